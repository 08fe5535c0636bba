package components

import "fmt"

// DerivedSuggestCount 每次编辑派生的建议数量
const DerivedSuggestCount = 5

// DeriveSuggests 由查询文字派生建议："<query> 1" … "<query> 5"
func DeriveSuggests(query string) []string {
	suggests := make([]string, 0, DerivedSuggestCount)
	for i := 1; i <= DerivedSuggestCount; i++ {
		suggests = append(suggests, fmt.Sprintf("%s %d", query, i))
	}
	return suggests
}

// TapMessage 点击气泡后提示的文字
func TapMessage(label string) string {
	return "bubble tapped: text=" + label
}
