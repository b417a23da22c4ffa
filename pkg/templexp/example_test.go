package templexp_test

import (
	"fmt"
	"os"

	"github.com/lwmacct/251214-go-pkg-stylecfg/pkg/templexp"
)

// Example_shellExpansion 演示 Shell 参数展开。
func Example_shellExpansion() {
	_ = os.Setenv("BRAND_COLOR", "#B7410E")
	defer func() { _ = os.Unsetenv("BRAND_COLOR") }()

	result, _ := templexp.ExpandTemplate(`rust: "${BRAND_COLOR}"`)
	fmt.Println(result)

	// Output:
	// rust: "#B7410E"
}

// Example_shellFallback 演示默认值回退语义。
func Example_shellFallback() {
	result, _ := templexp.ExpandTemplate(`dir=${STYLE_SRC_DIR:-./src}`)
	fmt.Println(result)

	// Output:
	// dir=./src
}

// Example_withVars 演示显式变量优先于 lookup。
func Example_withVars() {
	e := templexp.New(
		templexp.WithLookup(func(string) (string, bool) { return "from-lookup", true }),
		templexp.WithVars(map[string]string{"FONT": "JetBrains Mono"}),
	)
	result, _ := e.Expand(`${FONT} / ${OTHER}`)
	fmt.Println(result)

	// Output:
	// JetBrains Mono / from-lookup
}
