package errors

// AttributeBudgetExceeded reports an attribute edit that would push the
// attribute sum past the cap.
func AttributeBudgetExceeded(limit, attempted int) *Error {
	return FailedPreconditionf("you can only spend %d attribute points (attempted %d)", limit, attempted).
		WithReason(ReasonAttributeBudgetExceeded).
		WithMeta("cap", limit).
		WithMeta("attempted", attempted)
}

// SkillBudgetExceeded reports a skill edit larger than the remaining budget.
func SkillBudgetExceeded(available int) *Error {
	return FailedPreconditionf("you can only spend %d more skill points", available).
		WithReason(ReasonSkillBudgetExceeded).
		WithMeta("available", available)
}

// InvalidCheckRequest reports a malformed skill check request.
func InvalidCheckRequest(message string) *Error {
	return InvalidArgument(message).WithReason(ReasonInvalidCheckRequest)
}

// UnknownClass reports a class name missing from the class table.
func UnknownClass(name string) *Error {
	return InvalidArgumentf("unknown class %q", name).
		WithReason(ReasonUnknownClass).
		WithMeta("class", name)
}

// UnknownAttribute reports an attribute name missing from the attribute table.
func UnknownAttribute(name string) *Error {
	return InvalidArgumentf("unknown attribute %q", name).
		WithReason(ReasonUnknownAttribute).
		WithMeta("attribute", name)
}

// UnknownSkill reports a skill name missing from the skill table.
func UnknownSkill(name string) *Error {
	return InvalidArgumentf("unknown skill %q", name).
		WithReason(ReasonUnknownSkill).
		WithMeta("skill", name)
}

// CharacterNotFound reports a roster index outside [0, size).
func CharacterNotFound(index, size int) *Error {
	return NotFoundf("no character at index %d (roster has %d)", index, size).
		WithReason(ReasonCharacterNotFound).
		WithMeta("index", index).
		WithMeta("size", size)
}

// PersistError wraps a document store failure.
func PersistError(err error, message string) *Error {
	return WrapWithCode(err, CodeUnavailable, message).WithReason(ReasonPersistError)
}
