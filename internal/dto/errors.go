package dto

// BaseError - тело любого неуспешного ответа API приёма и доставки.
// В code лежит один из кодов ниже, в fields - поля формы, которые оператор заполнил неверно.
type BaseError struct {
	Code    string       `json:"code"`
	Message string       `json:"message"`
	Details string       `json:"details,omitempty"`
	Fields  []FieldError `json:"fields,omitempty"`
}

// FieldError указывает на поле формы: "cusPhone", "promotion", "orderItems[1].Product_ID".
type FieldError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

// ValidationErrorResponse (400, "validation_error"): форма заказа или ввод веса/суммы не прошли проверку.
type ValidationErrorResponse BaseError

// ConflictErrorResponse (409, "conflict"): действие недопустимо в текущем состоянии заказа,
// например не все позиции готовы или введённая сумма не равна «THANH TOÁN».
type ConflictErrorResponse BaseError

// UnauthorizedErrorResponse (401, "unauthorized"): нет токена оператора или он просрочен.
type UnauthorizedErrorResponse BaseError

// NotFoundErrorResponse (404, "not_found"): заказа или позиции с таким id нет.
type NotFoundErrorResponse BaseError

// InternalErrorResponse (500, "internal_error"); details несёт текст исходной ошибки.
type InternalErrorResponse BaseError

func NewValidationError(msg string, fields []FieldError) ValidationErrorResponse {
	return ValidationErrorResponse(BaseError{Code: "validation_error", Message: msg, Fields: fields})
}
func NewConflictError(msg string) ConflictErrorResponse {
	return ConflictErrorResponse(BaseError{Code: "conflict", Message: msg})
}
func NewUnauthorizedError(msg string) UnauthorizedErrorResponse {
	return UnauthorizedErrorResponse(BaseError{Code: "unauthorized", Message: msg})
}
func NewNotFoundError(msg string) NotFoundErrorResponse {
	return NotFoundErrorResponse(BaseError{Code: "not_found", Message: msg})
}
func NewInternalError(details string) InternalErrorResponse {
	return InternalErrorResponse(BaseError{Code: "internal_error", Message: "internal server error", Details: details})
}
