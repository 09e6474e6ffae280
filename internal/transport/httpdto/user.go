package httpdto

// UpdateDetailsRequest is used for POST /user. Unknown fields in the body
// are dropped by the reducer, never stored.
type UpdateDetailsRequest struct {
	Bio      string `json:"bio"`
	Website  string `json:"website"`
	Location string `json:"location"`
}
