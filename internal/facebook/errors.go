package facebook

import "fmt"

// GraphError is the error envelope returned by the Graph API
type GraphError struct {
	Status  int    // HTTP status code
	Message string // error.message
	Type    string // error.type, e.g. OAuthException
	Code    int    // error.code
}

func (e *GraphError) Error() string {
	if e.Type != "" {
		return fmt.Sprintf("graph api %d (%s #%d): %s", e.Status, e.Type, e.Code, e.Message)
	}
	return fmt.Sprintf("graph api %d: %s", e.Status, e.Message)
}
