// Package auth allows for authenticating nasadap against the NASA Earthdata
// identity provider (URS).
package auth

import (
	"fmt"
	"io/ioutil"

	"gopkg.in/yaml.v2"
)

// Credential holds an Earthdata login.
//
// Credentials are never taken from flags: they live in a file of their own so
// that a config may be shared without leaking secrets.
type Credential struct {
	Username string `json:"username" yaml:"username"`
	Password string `json:"password" yaml:"password"`
}

// FromFile loads a credential file.
//
// The file is YAML with username and password keys. The JSON form used by
// earlier versions of this tool (.earthdata_credentials) parses as well.
func FromFile(credFile string) (Credential, error) {
	var c Credential
	b, err := ioutil.ReadFile(credFile)
	if err != nil {
		return c, fmt.Errorf("reading credential file %q: %w", credFile, err)
	}
	if err = yaml.Unmarshal(b, &c); err != nil {
		return c, fmt.Errorf("parsing credential file %q: %w", credFile, err)
	}
	return c, c.Validate()
}

// Validate asserts the credential is complete
func (c Credential) Validate() error {
	if c.Username == "" {
		return fmt.Errorf("empty field: username is empty")
	}
	if c.Password == "" {
		return fmt.Errorf("empty field: password is empty")
	}
	return nil
}

// String renders the credential with its password redacted
func (c Credential) String() string {
	return c.Username + ":****"
}
