package journey_test

import (
	"fmt"
	"strings"

	"github.com/katalvlaran/attribution/journey"
)

// ExampleReadCSV loads padded journeys and inspects touch counts.
func ExampleReadCSV() {
	in := "0,1,2\n3,,\n1,NA,NA\n"
	t, err := journey.ReadCSV(strings.NewReader(in))
	if err != nil {
		fmt.Println("error:", err)

		return
	}
	hi, _ := t.MaxChannel()
	fmt.Printf("users=%d width=%d max_channel=%d\n", t.Users(), t.Width(), hi)
	for u := 0; u < t.Users(); u++ {
		fmt.Printf("user %d touches=%d\n", u, t.TouchCount(u))
	}
	// Output:
	// users=3 width=3 max_channel=3
	// user 0 touches=3
	// user 1 touches=1
	// user 2 touches=1
}
