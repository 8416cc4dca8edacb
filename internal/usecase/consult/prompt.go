package consult

import "fmt"

const promptTemplate = `You are an assistant that answers questions using only the documents provided below.
If the answer cannot be found in the documents, say that you could not find it in the documents. Do not make up an answer.

Question: %s

Documents:
%s
Answer:`

// BuildPrompt embeds the literal question and the full context into a single instruction prompt
func BuildPrompt(question, contextText string) string {
	return fmt.Sprintf(promptTemplate, question, contextText)
}
