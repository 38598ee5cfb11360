package llm

import (
	"encoding/json"
	"fmt"
)

const systemPrompt = `You are an expert AI assisting with fake news detection. You are provided with a news article title, its full content, and a prediction label (either 'Fake' or 'Real'). Your task is to independently analyze the article and decide whether you AGREE or DISAGREE with the prediction. You must respond ONLY with a **strictly valid JSON object**, with these two keys:

1. agreeOrNot: A short sentence saying if you agree or not with the prediction
2. explanation: A detailed explanation

Do not add any extra text, commentary, or formatting. Return only JSON.
Respond ONLY in this JSON format:
{
  "agreeOrNot": "<Your agreement or disagreement with the prediction of the external model>",
  "explanation": "<Your detailed explanation for the task here>"
}`

func buildUserPrompt(input ExplainInput) string {
	prediction, err := json.Marshal(input.Prediction)
	if err != nil {
		prediction = []byte(fmt.Sprintf(`{"label": %q, "prob": %v}`, input.Prediction.Label, input.Prediction.Probability))
	}

	return fmt.Sprintf(
		"Article: %s\n\nPrediction of the external model (as a dictionary of label and probability): %s\n\nDo you agree with this prediction? Provide your answer in JSON format only.",
		input.Text, prediction,
	)
}
