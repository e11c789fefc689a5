package params_test

import (
	"github.com/lithammer/dedent"
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/SAP/page-url-manager/internal/params"
)

var _ = Describe("Parameters", func() {
	When("No values are set", func() {
		It("is empty", func() {
			p := params.New()

			Expect(p.Len()).To(BeZero())
			Expect(p.Names()).To(BeEmpty())
		})
	})

	When("The parameters are nil", func() {
		It("behaves as empty", func() {
			var p *params.Parameters

			Expect(p.Len()).To(BeZero())
			Expect(p.Names()).To(BeNil())
			_, ok := p.Get("a")
			Expect(ok).To(BeFalse())
			Expect(p.Clone().Len()).To(BeZero())
		})
	})

	When("Values are set", func() {
		It("keeps insertion order", func() {
			p := params.New().
				Set("k1", "1").
				Set("k3", "3").
				Set("k2", "2")

			Expect(p.Names()).To(Equal([]string{"k1", "k3", "k2"}))
		})
	})

	When("A name which already exists is set", func() {
		It("replaces the value and keeps the position", func() {
			p := params.New().
				Set("a", "1").
				Set("b", "2").
				Set("a", "3")

			Expect(p.Names()).To(Equal([]string{"a", "b"}))
			v, ok := p.Get("a")
			Expect(ok).To(BeTrue())
			Expect(v).To(Equal("3"))
		})
	})

	When("A parameter is deleted", func() {
		It("is removed from names and values", func() {
			p := params.New().Set("a", "1").Set("b", "2").Set("c", "3")

			p.Delete("b")
			p.Delete("missing")

			Expect(p.Names()).To(Equal([]string{"a", "c"}))
			_, ok := p.Get("b")
			Expect(ok).To(BeFalse())
		})
	})

	Describe("Range", func() {
		It("stops when the callback returns false", func() {
			p := params.New().Set("a", "1").Set("b", "2").Set("c", "3")

			var seen []string
			p.Range(func(name, value string) bool {
				seen = append(seen, name)
				return name != "b"
			})

			Expect(seen).To(Equal([]string{"a", "b"}))
		})
	})

	Describe("Clone", func() {
		It("is independent of the original", func() {
			p := params.New().Set("a", "1")
			c := p.Clone()
			c.Set("b", "2")

			Expect(p.Len()).To(Equal(1))
			Expect(c.Names()).To(Equal([]string{"a", "b"}))
		})
	})

	Describe("FromMap", func() {
		It("orders entries by name", func() {
			p := params.FromMap(map[string]string{"z": "1", "a": "2", "m": "3"})

			Expect(p.Names()).To(Equal([]string{"a", "m", "z"}))
		})
	})

	Describe("FromPairs", func() {
		It("splits on the first equals sign", func() {
			p := params.FromPairs([]string{"key=value", "expr=a=b", "flag"})

			Expect(p.Names()).To(Equal([]string{"key", "expr", "flag"}))
			v, _ := p.Get("expr")
			Expect(v).To(Equal("a=b"))
			v, ok := p.Get("flag")
			Expect(ok).To(BeTrue())
			Expect(v).To(BeEmpty())
		})
	})

	Describe("FromYAML", func() {
		It("keeps the order of the list", func() {
			p, err := params.FromYAML([]byte(dedent.Dedent(`
				- name: q
				  value: a b&c
				- name: page
				  value: "2"
			`)))

			Expect(err).ToNot(HaveOccurred())
			Expect(p.String()).To(Equal("[q=a b&c page=2]"))
		})

		It("accepts JSON", func() {
			p, err := params.FromYAML([]byte(`[{"name":"a","value":"1"}]`))

			Expect(err).ToNot(HaveOccurred())
			Expect(p.Names()).To(Equal([]string{"a"}))
		})

		It("fails on an entry without a name", func() {
			p, err := params.FromYAML([]byte(dedent.Dedent(`
				- name: a
				  value: "1"
				- value: "2"
			`)))

			Expect(err).To(MatchError(ContainSubstring("index 1 has no name")))
			Expect(p).To(BeNil())
		})

		It("fails on a document that is not a list", func() {
			_, err := params.FromYAML([]byte("a: b"))

			Expect(err).To(HaveOccurred())
		})
	})
})
