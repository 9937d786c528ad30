package response

// Code is a stable machine-readable error code carried in error bodies.
type Code string

const (
	CodeInvalidRequest     Code = "invalid_request"
	CodeEmailExists        Code = "email_exists"
	CodeInvalidCredentials Code = "invalid_credentials"
	CodeInvalidToken       Code = "invalid_token"
	CodePlanNotFound       Code = "plan_not_found"
	CodePlanNotPublished   Code = "plan_not_published"
	CodeCardNotFound       Code = "card_not_found"
	CodeOrderNotFound      Code = "order_not_found"
	CodeOrderNotPending    Code = "order_not_pending"
	CodeTimeslotNotFound   Code = "timeslot_not_found"
	CodeInternal           Code = "internal_error"
)

// Envelope is the generic success body: {"success":true,"data":...}.
// Auth routes use a flatter historical shape and build their bodies
// by hand in the handler.
type Envelope[T any] struct {
	Success bool `json:"success"`
	Data    T    `json:"data"`
}

// ErrBody is the error body: {"success":false,"error":"<code>"}.
type ErrBody struct {
	Success bool `json:"success"`
	Error   Code `json:"error"`
}

// OK returns a successful response with data.
func OK[T any](data T) *Envelope[T] {
	return &Envelope[T]{Success: true, Data: data}
}

// Err returns an error response carrying a stable code.
func Err(code Code) *ErrBody {
	return &ErrBody{Success: false, Error: code}
}
