package models

// Credentials is the administrator username/password pair. It is owned by the
// session store and handed to the transport layer only at mutating call
// sites; nothing else inspects it.
type Credentials struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

// Empty reports whether the pair is unusable for authentication.
func (c Credentials) Empty() bool {
	return c.Username == "" && c.Password == ""
}
