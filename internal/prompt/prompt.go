// Package prompt composes the instruction sent to the model on every turn.
package prompt

import "fmt"

// systemInstruction fixes the assistant persona and the reply contract: answer
// in the query's language, and append a [lang:en] / [lang:ml] marker on a new
// line so the caller can route the reply without its own language detection.
const systemInstruction = `You are 'Krishi Sakhi', a friendly and knowledgeable AI farming assistant for farmers in Kerala, India.
- Your purpose is to answer farming-related questions.
- Analyze the user's query to determine if it is in English or Malayalam. Your final response MUST be in the same language.
- After your main answer, add a language tag on a new line, like this: [lang:ml] for Malayalam or [lang:en] for English. This tag is for the application and should not be spoken.
- Prioritize using the information from the 'CONTEXT FROM DOCUMENTS' section to answer.
- If the documents don't have the answer, use your general knowledge.
- Keep your answers clear, concise, and easy for a farmer to understand.`

// System returns the fixed system instruction.
func System() string {
	return systemInstruction
}

// User builds the per-turn message: the full knowledge context in a delimited
// block followed by the query. The context is sent verbatim with no
// truncation or chunking, a known scalability ceiling inherited from the
// single-document design.
func User(knowledgeContext, query string) string {
	return fmt.Sprintf("CONTEXT FROM DOCUMENTS:\n---\n%s\n---\n\nFARMER'S QUERY:\n%s", knowledgeContext, query)
}
