package signoz

// Dashboard is one entry of the dashboard listing endpoint.
type Dashboard struct {
	UUID      string        `json:"uuid"`
	CreatedBy string        `json:"created_by"`
	Data      DashboardData `json:"data"`
}

// DashboardData carries the dashboard payload fields the CLI cares about.
type DashboardData struct {
	Title string `json:"title"`
}

// Title returns the dashboard title, falling back to "Untitled".
func (d Dashboard) Title() string {
	if d.Data.Title == "" {
		return "Untitled"
	}
	return d.Data.Title
}

type listResponse struct {
	Status string      `json:"status"`
	Data   []Dashboard `json:"data"`
}

type loginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type loginResponse struct {
	AccessJWT string `json:"accessJwt"`
}

type createResponse struct {
	Status string `json:"status"`
	Data   struct {
		UUID string `json:"uuid"`
		ID   any    `json:"id"`
	} `json:"data"`
}

type errorResponse struct {
	Error     string `json:"error"`
	Message   string `json:"message"`
	ErrorType string `json:"errorType"`
}
