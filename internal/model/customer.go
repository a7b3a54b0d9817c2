package model

type Customer struct {
	ID        int64   `db:"id" json:"id"`
	Login     string  `db:"login" json:"login"`
	FirstName string  `db:"first_name" json:"firstName"`
	LastName  string  `db:"last_name" json:"lastName"`
	Phone     *string `db:"phone" json:"phone,omitempty"`
	Phrase    string  `db:"phrase" json:"-"`
}

func (c *Customer) DisplayName() string {
	return c.FirstName + " " + c.LastName
}
