package customer

// Customer is a directory entry. The directory is an external collaborator:
// the core only looks entries up by id or username, it never mutates them.
type Customer struct {
	id       int64
	username Username
	role     Role
}

func NewCustomer(id int64, username Username, role Role) *Customer {
	return &Customer{
		id:       id,
		username: username,
		role:     role,
	}
}

func (c *Customer) ID() int64          { return c.id }
func (c *Customer) Username() Username { return c.username }
func (c *Customer) Role() Role         { return c.role }
