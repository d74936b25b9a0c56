package domain

// UserToken is the login token attached to every non-login service call.
type UserToken struct {
	// UserName is the profile name the token was issued for.
	UserName string
	// Token is the opaque token string.
	Token string
}

// IsEmpty returns true if no token string is present.
func (t UserToken) IsEmpty() bool {
	return t.Token == ""
}

// UserProfile is the result of a successful login.
type UserProfile struct {
	Name  string `xml:"name"`
	Token string `xml:"token"`
}

// UserToken converts the profile into a token.
func (p UserProfile) UserToken() UserToken {
	return UserToken{UserName: p.Name, Token: p.Token}
}

// User is the identity reference held by every service client.
type User struct {
	// ID uniquely identifies the user within the process.
	ID string
	// Name is a human-readable label, usually the configured user name.
	Name string
}

// RequestHeader is sent as a SOAP header with every call to services that accept one.
type RequestHeader struct {
	// ApplicationName identifies the library and the calling application.
	ApplicationName string
	// NetworkCode selects the DFP network. Unused by DFA.
	NetworkCode string
	// TargetNamespace is the XML namespace the header is serialized in. It must
	// match the binding namespace of the service it is attached to.
	TargetNamespace string
}
