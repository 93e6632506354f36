package service

import (
	"context"
	"fmt"
	"regexp"
	"strings"

	"hosting-storefront/internal/client"
)

var domainNamePattern = regexp.MustCompile(`^[a-z0-9]([a-z0-9-]{0,61}[a-z0-9])?(\.[a-z]{2,})+$`)

type DomainService interface {
	Check(ctx context.Context, domain string) (*client.DomainCheckResult, error)
}

type domainServiceImpl struct {
	registrarClient client.RegistrarClient
}

func NewDomainService(registrarClient client.RegistrarClient) DomainService {
	return &domainServiceImpl{
		registrarClient: registrarClient,
	}
}

func (s *domainServiceImpl) Check(ctx context.Context, domain string) (*client.DomainCheckResult, error) {
	domain = strings.ToLower(strings.TrimSpace(domain))
	if !domainNamePattern.MatchString(domain) {
		return nil, &ValidationError{Field: "domain", Reason: "is not a valid domain name"}
	}

	result, err := s.registrarClient.CheckAvailability(ctx, domain)
	if err != nil {
		return nil, fmt.Errorf("check domain availability: %w", err)
	}
	return result, nil
}
