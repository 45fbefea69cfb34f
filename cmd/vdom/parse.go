package main

import (
	"encoding/json"
	"fmt"
	"os"
	"sort"
	"strings"

	"github.com/Arubaruba/virtual-dom/template"
	"github.com/Arubaruba/virtual-dom/vdom"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

var parseCmd = &cobra.Command{
	Use:   "parse <expression> [binding...]",
	Short: "Expand a template expression",
	Long:  "Parse a template expression into a virtual DOM tree and print it. Each trailing argument is bound to one {} placeholder, in order.",
	Args:  cobra.MinimumNArgs(1),
	RunE:  runParse,
}

func init() {
	parseCmd.Flags().Bool("json", false, "Print the tree as JSON")

	_ = viper.BindPFlag("json", parseCmd.Flags().Lookup("json"))

	rootCmd.AddCommand(parseCmd)
}

func runParse(cmd *cobra.Command, args []string) error {
	expr := args[0]
	bindings := make([]any, 0, len(args)-1)
	for _, a := range args[1:] {
		bindings = append(bindings, a)
	}

	root, err := template.Parse(expr, bindings...)
	if err != nil {
		return fmt.Errorf("parsing template: %w", err)
	}

	if viper.GetBool("verbose") {
		fmt.Fprintf(os.Stderr, "Parsed %q: root %s, %d child node(s)\n", expr, root.Name, len(root.Children))
	}

	if viper.GetBool("json") {
		out, err := json.MarshalIndent(root, "", "  ")
		if err != nil {
			return fmt.Errorf("encoding tree: %w", err)
		}
		fmt.Println(string(out))
		return nil
	}

	printNode(vdom.ElementNode{Element: root}, 0)
	return nil
}

// printNode writes one outline line per node, indented by depth.
func printNode(n vdom.Node, depth int) {
	indent := strings.Repeat("  ", depth)
	switch x := n.(type) {
	case vdom.Text:
		fmt.Printf("%s- text %q\n", indent, x.Content)
	case vdom.ElementNode:
		fmt.Printf("%s- %s%s\n", indent, x.Element.Name, formatAttrs(x.Element.Attributes))
		for _, c := range x.Element.Children {
			printNode(c, depth+1)
		}
	}
}

func formatAttrs(attrs map[string]string) string {
	if len(attrs) == 0 {
		return ""
	}
	keys := make([]string, 0, len(attrs))
	for k := range attrs {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	parts := make([]string, 0, len(keys))
	for _, k := range keys {
		parts = append(parts, fmt.Sprintf("%s=%q", k, attrs[k]))
	}
	return " (" + strings.Join(parts, ", ") + ")"
}
