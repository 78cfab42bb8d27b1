package neatcommit_test

import (
	"testing"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
)

func TestNeatcommit(t *testing.T) {
	RegisterFailHandler(Fail)
	RunSpecs(t, "neatcommit Suite")
}
