package domain

import "fmt"

// Customer is a buyer with the revenue attributed to them
type Customer struct {
	ID            string  `json:"id"`
	Name          string  `json:"name"`
	Email         string  `json:"email,omitempty"`
	LifetimeValue float64 `json:"lifetime_value"`
	OrderCount    int     `json:"order_count"`
}

func (c Customer) String() string {
	name := c.Name
	if name == "" {
		name = c.ID
	}
	return fmt.Sprintf("%s ($%.2f)", name, c.LifetimeValue)
}

// IsRepeat reports whether the customer placed more than one order
func (c Customer) IsRepeat() bool {
	return c.OrderCount > 1
}
