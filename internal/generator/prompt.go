package generator

import "fmt"

// systemPrompt instructs the model to emit a single raw JSON challenge.
const systemPrompt = `You are an expert coding challenge creator.

Your task is to generate a coding question with multiple choice answers.
The question should be appropriate for the specified difficulty level.

For easy questions: Focus on basic syntax, simple operations, or common programming concepts.
For medium questions: Cover intermediate concepts like data structures, algorithms, or language features.
For hard questions: Include advanced topics, design patterns, optimization techniques, or complex algorithms.

Return the challenge in the following JSON structure:
{
    "title": "The question title",
    "options": ["Option 1", "Option 2", "Option 3", "Option 4"],
    "correct_answer_id": 0,
    "explanation": "Detailed explanation of why the correct answer is right"
}

IMPORTANT: Output must be ONLY raw JSON.
Do not include explanations, markdown, or extra text outside the JSON object.`

// userRequest builds the user message. The random tag keeps repeated requests
// from being served a cached completion.
func userRequest(difficulty, tag string) string {
	return fmt.Sprintf("Generate a %s difficulty coding challenge. ID: %s", difficulty, tag)
}
