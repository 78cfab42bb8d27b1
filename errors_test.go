package neatcommit_test

import (
	"context"
	"errors"
	"fmt"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/zirafica98/neatcommit"
	"github.com/zirafica98/neatcommit/rules"
)

var _ = Describe("Error", func() {
	It("should create a new error with correct fields", func() {
		err := neatcommit.NewError(10, 5, "permission denied")
		Expect(err.Line).To(Equal(10))
		Expect(err.Column).To(Equal(5))
		Expect(err.Err).To(Equal("permission denied"))
	})
})

var _ = Describe("InputError", func() {
	It("should match ErrInvalidInput", func() {
		var err error = &neatcommit.InputError{Field: "filename", Reason: "must not be blank"}
		Expect(errors.Is(err, neatcommit.ErrInvalidInput)).To(BeTrue())
		Expect(errors.Is(fmt.Errorf("wrapped: %w", err), neatcommit.ErrInvalidInput)).To(BeTrue())
		Expect(err.Error()).To(Equal("invalid analysis request: filename must not be blank"))
	})

	It("should not match unrelated errors", func() {
		Expect(errors.Is(errors.New("x"), neatcommit.ErrInvalidInput)).To(BeFalse())
	})
})

var _ = Describe("RuleError", func() {
	It("should unwrap to the evaluation error", func() {
		err := &neatcommit.RuleError{RuleID: "python-eval", Err: rules.ErrBudgetExceeded}
		Expect(err).To(MatchError(rules.ErrBudgetExceeded))
		Expect(errors.Is(err, context.Canceled)).To(BeFalse())
		Expect(err.Error()).To(Equal("rule python-eval: rule evaluation budget exceeded"))
	})
})
