package cwe_test

import (
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/zirafica98/neatcommit/cwe"
)

var _ = Describe("CWE data", func() {
	Context("when consulting cwe data", func() {
		It("it should retrieves the weakness", func() {
			weakness := cwe.Get("798")
			Expect(weakness).ShouldNot(BeNil())
			Expect(weakness.ID).Should(Equal("798"))
			Expect(weakness.Name).ShouldNot(BeEmpty())
			Expect(weakness.Description).ShouldNot(BeEmpty())
		})

		It("should return nil for an unknown weakness", func() {
			Expect(cwe.Get("99999")).Should(BeNil())
		})

		It("should key every weakness by its own id", func() {
			for _, id := range cwe.IDs() {
				Expect(cwe.Get(id).ID).Should(Equal(id))
			}
		})
	})
})
