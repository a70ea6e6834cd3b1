package playback_test

import (
	"context"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/san-kum/algoviz/internal/algorithms"
	"github.com/san-kum/algoviz/internal/playback"
	"github.com/san-kum/algoviz/internal/step"
)

var _ = Describe("Compare", func() {
	It("sorts the same input with every producer", func() {
		in := step.Input{Values: []int{5, 1, 4, 2, 8}}
		producers := []step.Producer{algorithms.Bubble{}, algorithms.Merge{}, algorithms.Quick{}}

		out, err := playback.Compare(context.Background(), producers, in, step.Params{})
		Expect(err).NotTo(HaveOccurred())
		Expect(out).To(HaveLen(3))

		for i, s := range out {
			Expect(s.Algorithm).To(Equal(producers[i].Name()))
			Expect(s.Steps).To(BeNumerically(">", 0))
			Expect(s.Final.Terminal).To(BeTrue())
			Expect(s.Final.Values()).To(Equal([]int{1, 2, 4, 5, 8}))
		}
		Expect(in.Values).To(Equal([]int{5, 1, 4, 2, 8}))
	})

	It("fails when any producer rejects the input", func() {
		in := step.Input{Values: []int{3, 1, 2}}
		producers := []step.Producer{algorithms.Bubble{}, algorithms.Binary{}}

		_, err := playback.Compare(context.Background(), producers, in, step.Params{})
		Expect(err).To(MatchError(step.ErrMissingTarget))
	})
})
