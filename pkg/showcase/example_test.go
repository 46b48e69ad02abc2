package showcase_test

import (
	"fmt"

	"github.com/walteh/showcase-migrate/pkg/showcase"
)

func ExampleRewrite() {
	doc := `<Showcase title="x" items={[{label: "Do this", points: ["a","b"]},{label: "Avoid that", points: ["c"]}]} />`

	fmt.Println(showcase.Rewrite(doc))

	// Output:
	// <Showcase title="x" sections={[
	//     {label: "Do this", body: "- a\n- b", tone: "positive"},
	//     {label: "Avoid that", body: "- c", tone: "warning"}
	//   ]} />
}

func ExampleClassifyTone() {
	for _, label := range []string{"Good but risky", "Anti-pattern", "Pitfalls", "Edge"} {
		fmt.Printf("%s: %s\n", label, showcase.ClassifyTone(label))
	}

	// Output:
	// Good but risky: positive
	// Anti-pattern: positive
	// Pitfalls: warning
	// Edge: neutral
}
