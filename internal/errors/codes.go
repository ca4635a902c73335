package errors

// Code represents an error code
type Code string

// Error codes
const (
	CodeOK                 Code = "OK"
	CodeCanceled           Code = "CANCELED"
	CodeInvalidArgument    Code = "INVALID_ARGUMENT"
	CodeDeadlineExceeded   Code = "DEADLINE_EXCEEDED"
	CodeNotFound           Code = "NOT_FOUND"
	CodeAlreadyExists      Code = "ALREADY_EXISTS"
	CodeFailedPrecondition Code = "FAILED_PRECONDITION"
	CodeUnimplemented      Code = "UNIMPLEMENTED"
	CodeInternal           Code = "INTERNAL"
	CodeUnavailable        Code = "UNAVAILABLE"
)

// String returns the string representation of the code
func (c Code) String() string {
	return string(c)
}

// Reason narrows a code down to a rules-engine outcome
type Reason string

// Rules engine reasons
const (
	ReasonAttributeBudgetExceeded Reason = "ATTRIBUTE_BUDGET_EXCEEDED"
	ReasonSkillBudgetExceeded     Reason = "SKILL_BUDGET_EXCEEDED"
	ReasonInvalidCheckRequest     Reason = "INVALID_CHECK_REQUEST"
	ReasonUnknownClass            Reason = "UNKNOWN_CLASS"
	ReasonUnknownAttribute        Reason = "UNKNOWN_ATTRIBUTE"
	ReasonUnknownSkill            Reason = "UNKNOWN_SKILL"
	ReasonCharacterNotFound       Reason = "CHARACTER_NOT_FOUND"
	ReasonPersistError            Reason = "PERSIST_ERROR"
)

// String returns the string representation of the reason
func (r Reason) String() string {
	return string(r)
}
