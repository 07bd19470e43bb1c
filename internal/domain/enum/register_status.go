package enum

// RegisterStatus is the lifecycle state of a cash register.
type RegisterStatus string

const (
	RegisterStatusOpen   RegisterStatus = "open"
	RegisterStatusClosed RegisterStatus = "closed"
)

func (s RegisterStatus) String() string {
	return string(s)
}
