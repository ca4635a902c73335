package errors_test

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/suite"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	"github.com/KirkDiggler/rpg-sheet/internal/errors"
)

type ErrorsTestSuite struct {
	suite.Suite
}

func TestErrorsSuite(t *testing.T) {
	suite.Run(t, new(ErrorsTestSuite))
}

func (s *ErrorsTestSuite) TestNewError() {
	testCases := []struct {
		name     string
		code     errors.Code
		message  string
		expected string
	}{
		{
			name:     "not found error",
			code:     errors.CodeNotFound,
			message:  "sheet not found",
			expected: "NOT_FOUND: sheet not found",
		},
		{
			name:     "invalid argument error",
			code:     errors.CodeInvalidArgument,
			message:  "invalid input",
			expected: "INVALID_ARGUMENT: invalid input",
		},
	}

	for _, tc := range testCases {
		s.Run(tc.name, func() {
			err := errors.New(tc.code, tc.message)
			s.Assert().Equal(tc.expected, err.Error())
			s.Assert().Equal(tc.code, err.Code)
			s.Assert().Equal(tc.message, err.Message)
		})
	}
}

func (s *ErrorsTestSuite) TestErrorStringIncludesReason() {
	err := errors.SkillBudgetExceeded(3)
	s.Assert().Equal("FAILED_PRECONDITION(SKILL_BUDGET_EXCEEDED): you can only spend 3 more skill points", err.Error())
}

func (s *ErrorsTestSuite) TestErrorWithMeta() {
	err := errors.NotFound("sheet not found").
		WithMeta("sheet_id", "123").
		WithMeta("backend", "redis")

	s.Assert().Equal("123", err.Meta["sheet_id"])
	s.Assert().Equal("redis", err.Meta["backend"])
}

func (s *ErrorsTestSuite) TestWrap() {
	baseErr := fmt.Errorf("database connection failed")
	wrapped := errors.Wrap(baseErr, "failed to load sheet")

	s.Assert().Equal(errors.CodeInternal, wrapped.Code)
	s.Assert().Equal("failed to load sheet", wrapped.Message)
	s.Assert().Equal(baseErr, wrapped.Unwrap())
}

func (s *ErrorsTestSuite) TestWrapPreservesCodeAndReason() {
	baseErr := errors.CharacterNotFound(4, 2)
	wrapped := errors.Wrap(baseErr, "update attribute")

	s.Assert().Equal(errors.CodeNotFound, wrapped.Code)
	s.Assert().Equal(errors.ReasonCharacterNotFound, wrapped.Reason)
	s.Assert().Equal(4, wrapped.Meta["index"])
	s.Assert().Equal(baseErr, wrapped.Unwrap())
}

func (s *ErrorsTestSuite) TestWrapWithCode() {
	baseErr := fmt.Errorf("connection timeout")
	wrapped := errors.WrapWithCode(baseErr, errors.CodeUnavailable, "store unavailable")

	s.Assert().Equal(errors.CodeUnavailable, wrapped.Code)
	s.Assert().Equal("store unavailable", wrapped.Message)
	s.Assert().Equal(baseErr, wrapped.Unwrap())
}

func (s *ErrorsTestSuite) TestWrapNil() {
	s.Assert().Nil(errors.Wrap(nil, "should be nil"))
	s.Assert().Nil(errors.WrapWithCode(nil, errors.CodeNotFound, "should be nil"))
}

func (s *ErrorsTestSuite) TestConstructorFunctions() {
	testCases := []struct {
		name        string
		constructor func() *errors.Error
		code        errors.Code
	}{
		{"NotFound", func() *errors.Error { return errors.NotFound("test") }, errors.CodeNotFound},
		{"InvalidArgument", func() *errors.Error { return errors.InvalidArgument("test") }, errors.CodeInvalidArgument},
		{"FailedPrecondition", func() *errors.Error { return errors.FailedPreconditionf("test") }, errors.CodeFailedPrecondition},
		{"Internal", func() *errors.Error { return errors.Internal("test") }, errors.CodeInternal},
		{"Unavailable", func() *errors.Error { return errors.Unavailablef("test") }, errors.CodeUnavailable},
	}

	for _, tc := range testCases {
		s.Run(tc.name, func() {
			err := tc.constructor()
			s.Assert().Equal(tc.code, err.Code)
			s.Assert().Equal("test", err.Message)
		})
	}
}

func (s *ErrorsTestSuite) TestRuleConstructors() {
	testCases := []struct {
		name   string
		err    *errors.Error
		code   errors.Code
		reason errors.Reason
	}{
		{"attribute budget", errors.AttributeBudgetExceeded(70, 71), errors.CodeFailedPrecondition, errors.ReasonAttributeBudgetExceeded},
		{"skill budget", errors.SkillBudgetExceeded(0), errors.CodeFailedPrecondition, errors.ReasonSkillBudgetExceeded},
		{"invalid check", errors.InvalidCheckRequest("dc must be at least 1"), errors.CodeInvalidArgument, errors.ReasonInvalidCheckRequest},
		{"unknown class", errors.UnknownClass("Paladin"), errors.CodeInvalidArgument, errors.ReasonUnknownClass},
		{"unknown attribute", errors.UnknownAttribute("Luck"), errors.CodeInvalidArgument, errors.ReasonUnknownAttribute},
		{"unknown skill", errors.UnknownSkill("Juggling"), errors.CodeInvalidArgument, errors.ReasonUnknownSkill},
		{"character not found", errors.CharacterNotFound(1, 0), errors.CodeNotFound, errors.ReasonCharacterNotFound},
		{"persist", errors.PersistError(fmt.Errorf("boom"), "save sheet"), errors.CodeUnavailable, errors.ReasonPersistError},
	}

	for _, tc := range testCases {
		s.Run(tc.name, func() {
			s.Assert().Equal(tc.code, tc.err.Code)
			s.Assert().True(errors.HasReason(tc.err, tc.reason))
		})
	}
}

func (s *ErrorsTestSuite) TestFormattedConstructors() {
	err := errors.NotFoundf("sheet %s not found", "123")
	s.Assert().Equal(errors.CodeNotFound, err.Code)
	s.Assert().Equal("sheet 123 not found", err.Message)

	err2 := errors.InvalidArgumentf("invalid dc: %d", 0)
	s.Assert().Equal(errors.CodeInvalidArgument, err2.Code)
	s.Assert().Equal("invalid dc: 0", err2.Message)
}

func (s *ErrorsTestSuite) TestErrorIs() {
	err1 := errors.NotFound("test")
	err2 := errors.NotFound("test")
	err3 := errors.InvalidArgument("test")

	s.Assert().True(err1.Is(err2))
	s.Assert().False(err1.Is(err3))
}

func (s *ErrorsTestSuite) TestErrorIsMatchesReason() {
	budget := errors.Wrap(errors.SkillBudgetExceeded(2), "update skill")

	s.Assert().True(errors.Is(budget, errors.SkillBudgetExceeded(0)))
	s.Assert().True(errors.Is(budget, errors.New(errors.CodeFailedPrecondition, "")))
	s.Assert().False(errors.Is(budget, errors.AttributeBudgetExceeded(70, 71)))
}

func (s *ErrorsTestSuite) TestHelperFunctions() {
	notFoundErr := errors.NotFound("test")
	invalidErr := errors.InvalidArgument("test")
	wrappedErr := errors.Wrap(notFoundErr, "wrapped")

	s.Assert().True(errors.IsNotFound(notFoundErr))
	s.Assert().True(errors.IsNotFound(wrappedErr))
	s.Assert().False(errors.IsNotFound(invalidErr))

	s.Assert().True(errors.IsInvalidArgument(invalidErr))
	s.Assert().False(errors.IsInvalidArgument(notFoundErr))

	s.Assert().True(errors.IsFailedPrecondition(errors.SkillBudgetExceeded(1)))
	s.Assert().True(errors.IsInternal(errors.Internal("test")))
	s.Assert().True(errors.IsUnavailable(errors.Unavailablef("down")))
	s.Assert().False(errors.HasReason(nil, errors.ReasonPersistError))
}

func (s *ErrorsTestSuite) TestGetCode() {
	err := errors.NotFound("test")
	wrapped := errors.Wrap(err, "wrapped")

	s.Assert().Equal(errors.CodeNotFound, errors.GetCode(err))
	s.Assert().Equal(errors.CodeNotFound, errors.GetCode(wrapped))
	s.Assert().Equal(errors.CodeInternal, errors.GetCode(fmt.Errorf("standard error")))
	s.Assert().Equal(errors.CodeOK, errors.GetCode(nil))
}

func (s *ErrorsTestSuite) TestGetMeta() {
	err := errors.NotFound("test").WithMeta("key", "value")
	wrapped := errors.Wrap(err, "wrapped")

	s.Assert().Equal("value", errors.GetMeta(err)["key"])
	s.Assert().Equal("value", errors.GetMeta(wrapped)["key"])
	s.Assert().Nil(errors.GetMeta(fmt.Errorf("standard error")))
}

func (s *ErrorsTestSuite) TestGetMessage() {
	err := errors.NotFound("user friendly message")
	wrapped := errors.Wrap(err, "wrapped message")
	stdErr := fmt.Errorf("standard error")

	s.Assert().Equal("user friendly message", errors.GetMessage(err))
	s.Assert().Equal("wrapped message", errors.GetMessage(wrapped))
	s.Assert().Equal("standard error", errors.GetMessage(stdErr))
}

func (s *ErrorsTestSuite) TestGRPCConversion() {
	err := errors.NotFound("sheet not found").
		WithMeta("sheet_id", "123")

	grpcErr := errors.ToGRPCError(err)
	st, ok := status.FromError(grpcErr)
	s.Require().True(ok)
	s.Assert().Equal(codes.NotFound, st.Code())
	s.Assert().Equal("sheet not found", st.Message())

	grpcErr2 := status.Error(codes.InvalidArgument, "invalid input")
	err2 := errors.FromGRPCError(grpcErr2)
	s.Assert().Equal(errors.CodeInvalidArgument, errors.GetCode(err2))
	s.Assert().Equal("invalid input", errors.GetMessage(err2))
}

func (s *ErrorsTestSuite) TestGRPCRoundTripKeepsReasonAndMeta() {
	original := errors.AttributeBudgetExceeded(70, 72)

	converted := errors.FromGRPCError(errors.ToGRPCError(original))

	s.Assert().Equal(errors.CodeFailedPrecondition, errors.GetCode(converted))
	s.Assert().True(errors.HasReason(converted, errors.ReasonAttributeBudgetExceeded))
	// structpb numbers decode as float64
	s.Assert().Equal(float64(70), errors.GetMeta(converted)["cap"])
	s.Assert().Equal(float64(72), errors.GetMeta(converted)["attempted"])
	s.Assert().NotContains(errors.GetMeta(converted), "reason")
}

func (s *ErrorsTestSuite) TestToGRPCErrorPlainError() {
	st, ok := status.FromError(errors.ToGRPCError(fmt.Errorf("boom")))
	s.Require().True(ok)
	s.Assert().Equal(codes.Internal, st.Code())
	s.Assert().Nil(errors.ToGRPCError(nil))
}

func (s *ErrorsTestSuite) TestGRPCCodeMapping() {
	testCases := []struct {
		code     errors.Code
		expected codes.Code
	}{
		{errors.CodeNotFound, codes.NotFound},
		{errors.CodeInvalidArgument, codes.InvalidArgument},
		{errors.CodeAlreadyExists, codes.AlreadyExists},
		{errors.CodeFailedPrecondition, codes.FailedPrecondition},
		{errors.CodeInternal, codes.Internal},
		{errors.CodeUnavailable, codes.Unavailable},
		{errors.Code("SOMETHING_ELSE"), codes.Unknown},
	}

	for _, tc := range testCases {
		s.Run(string(tc.code), func() {
			s.Assert().Equal(tc.expected, tc.code.GRPCCode())
		})
	}
}
