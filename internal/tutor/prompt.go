package tutor

import (
	"fmt"
	"strings"

	"github.com/yarayan327-hash/math-test-KSA-material/internal/catalog"
)

// QuestionSeparator joins the system instruction and the user's question.
const QuestionSeparator = "\n\n用户的问题是: "

var rules = []string{
	"称呼用户为“指挥官”或“同学”。",
	"尽量用天文、航天、科幻的例子来比喻数学概念。",
	"回答要简洁有力，像战术简报一样，但解释要清晰。",
	"如果用户要求出题，请根据当前章节出具体的计算题或概念辨析题。",
	"使用LaTeX格式(用$包裹)表示数学公式。",
}

// SystemInstruction describes the persona, the current chapter and its key
// points, and the answering rules.
func SystemInstruction(e catalog.Entry) string {
	var b strings.Builder
	b.WriteString("你是一位幽默、酷炫的中学数学物理老师，正在给学生讲解“圆锥曲线”。\n")
	fmt.Fprintf(&b, "当前的章节是：%s。\n", e.Title)
	fmt.Fprintf(&b, "核心知识点包括：%s。\n\n", e.KeyPointSummary())
	b.WriteString("请遵循以下规则：\n")
	for i, r := range rules {
		fmt.Fprintf(&b, "%d. %s\n", i+1, r)
	}
	return b.String()
}

// ComposePrompt is the full text sent for one question.
func ComposePrompt(e catalog.Entry, question string) string {
	return SystemInstruction(e) + QuestionSeparator + question
}
