package rex_test

import (
	"fmt"

	"go.dw1.io/rex"
)

func ExampleOneOf() {
	fmt.Println(rex.OneOf("foo", "bar", "baz"))
	// Output: (?:foo|bar|baz)
}

func ExampleNot() {
	fmt.Println(rex.Not(rex.Whitespace))
	fmt.Println(rex.Not(rex.Not(rex.Whitespace)))
	// Output:
	// \S
	// \s
}

func ExampleCaptureAs() {
	proto := rex.CaptureAs("protocol", rex.OneOf(rex.Exactly("http").Maybe().Exactly("s"), "smtp", "ftp"))
	fmt.Println(proto)
	// Output: (?<protocol>https?|smtp|ftp)
}

func ExampleToken_Regexp() {
	re, err := rex.New().
		LineStart().
		CaptureAs("year").Times(4).Digit().
		Exactly("-").
		CaptureAs("month").Times(2).Digit().
		LineEnd().
		Regexp("")
	if err != nil {
		panic(err)
	}

	m := re.FindStringSubmatch("2024-06")
	fmt.Println(m[re.SubexpIndex("year")], m[re.SubexpIndex("month")])
	// Output: 2024 06
}

func ExampleToken_Err() {
	tok := rex.New().Exactly("a").Between(3, 1).Digit()
	fmt.Printf("%q\n", tok.String())
	fmt.Println(tok.Err())
	// Output:
	// ""
	// invalid repeat range: min 3 exceeds max 1
}

func ExampleRegistry_Define() {
	r := rex.NewRegistry()
	if _, err := r.Define("hex", rex.Definition{Pattern: "[0-9a-f]", Capabilities: rex.Quantifiable}); err != nil {
		panic(err)
	}

	fmt.Println(rex.New().Exactly("#").Times(6).Use(r, "hex"))
	// Output: #[0-9a-f]{6}
}
