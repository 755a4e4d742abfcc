package domain

// CreateServerOpts holds the parameters for creating a new server.
// Every field except UserData must be populated.
type CreateServerOpts struct {
	Name    string
	Image   string // name or ID
	Flavor  string // flavor / server type name or ID
	KeyName string // key pair name

	// UserData is the boot-time payload handed to the instance verbatim.
	// nil means no user data is attached to the request.
	UserData []byte
}
