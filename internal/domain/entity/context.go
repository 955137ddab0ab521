package entity

// QueryContext collects human-readable descriptions of the store operations a request ran.
// It is returned to callers for transparency and never drives control flow.
type QueryContext []string

// Add appends a description
func (c *QueryContext) Add(msg string) {
	*c = append(*c, msg)
}
