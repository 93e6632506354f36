package model

type Plan string

const (
	PlanStudent  Plan = "student"
	PlanStarter  Plan = "starter"
	PlanPremium  Plan = "premium"
	PlanBusiness Plan = "business"
)

func (p Plan) Valid() bool {
	switch p {
	case PlanStudent, PlanStarter, PlanPremium, PlanBusiness:
		return true
	}
	return false
}

type Term string

const (
	TermMonthly     Term = "monthly"
	TermAnnually    Term = "annually"
	TermBiennially  Term = "biennially"
	TermTriennially Term = "triennially"
)

func (t Term) Months() int {
	switch t {
	case TermMonthly:
		return 1
	case TermAnnually:
		return 12
	case TermBiennially:
		return 24
	case TermTriennially:
		return 36
	}
	return 0
}

// BillingCycle is the term name the billing API expects.
func (t Term) BillingCycle() string {
	switch t {
	case TermMonthly:
		return "monthly"
	case TermAnnually:
		return "yearly"
	case TermBiennially:
		return "biennial"
	case TermTriennially:
		return "triennial"
	}
	return ""
}

type ItemType string

const (
	ItemHosting ItemType = "hosting"
	ItemDomain  ItemType = "domain"
	ItemEmail   ItemType = "email"
	ItemAddon   ItemType = "addon"
	ItemOther   ItemType = "other"
)

// SingleQuantity reports whether the type is capped at quantity 1.
func (t ItemType) SingleQuantity() bool {
	return t == ItemHosting || t == ItemDomain || t == ItemEmail
}

type CartItem struct {
	ID       string   `json:"id"`
	Type     ItemType `json:"type"`
	Quantity int      `json:"quantity"`

	// hosting
	Plan  Plan `json:"plan,omitempty"`
	Term  Term `json:"term,omitempty"`
	Trial bool `json:"trial,omitempty"`

	// domain
	Domain string `json:"domain,omitempty"`

	// email / addon: either a known product code or an inline price
	ProductCode string `json:"product_code,omitempty"`
	Name        string `json:"name,omitempty"`
	Description string `json:"description,omitempty"`
	PriceCents  int64  `json:"price_cents,omitempty"`
	Interval    string `json:"interval,omitempty"`
	Currency    string `json:"currency,omitempty"`
}

// SameHosting reports whether two hosting items carry the identical
// (plan, term, trial) tuple.
func (i *CartItem) SameHosting(other *CartItem) bool {
	return i.Plan == other.Plan && i.Term == other.Term && i.Trial == other.Trial
}

// Cart holds at most one hosting item; the slot makes the
// single-hosting rule structural instead of a UI-layer check.
type Cart struct {
	SessionID string
	Hosting   *CartItem
	Others    []CartItem
}

// Items flattens the cart into positional order, hosting first.
func (c *Cart) Items() []CartItem {
	items := make([]CartItem, 0, len(c.Others)+1)
	if c.Hosting != nil {
		items = append(items, *c.Hosting)
	}
	items = append(items, c.Others...)
	return items
}

func (c *Cart) Len() int {
	n := len(c.Others)
	if c.Hosting != nil {
		n++
	}
	return n
}

func (c *Cart) HasDomain() bool {
	for _, item := range c.Others {
		if item.Type == ItemDomain {
			return true
		}
	}
	return false
}
