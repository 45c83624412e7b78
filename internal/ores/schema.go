package ores

import (
	_ "embed"
	"encoding/json"
	"fmt"
	"log"

	"github.com/xeipuuv/gojsonschema"
)

//go:embed ores_scores.schema.json
var schemaJSON string

var responseSchema = mustCompileSchema()

func mustCompileSchema() *gojsonschema.Schema {
	schema, err := gojsonschema.NewSchema(gojsonschema.NewStringLoader(schemaJSON))
	if err != nil {
		panic(fmt.Sprintf("ores: invalid embedded response schema: %v", err))
	}
	return schema
}

// scoresResponse mirrors the ORES v2 response envelope:
// scores -> wiki -> model -> scores -> revision ID.
type scoresResponse struct {
	Scores map[string]map[string]modelScores `json:"scores"`
}

type modelScores struct {
	Scores map[string]revisionScore `json:"scores"`
}

// revisionScore carries either a prediction or a per-revision error (the
// service reports deleted revisions that way).
type revisionScore struct {
	Prediction  string             `json:"prediction"`
	Probability map[string]float64 `json:"probability"`
	Error       *scoreError        `json:"error"`
}

type scoreError struct {
	Message string `json:"message"`
	Type    string `json:"type"`
}

// parseResponse turns a batch response body into predictions. It fails
// with a *ParseError for bodies that are not JSON and a *SchemaError for
// JSON that does not match the scores envelope; both are retryable
// upstream. Revisions carrying a per-revision error are skipped, not
// failed.
func (c *Client) parseResponse(body []byte) (PredictionStore, error) {
	result, err := responseSchema.Validate(gojsonschema.NewBytesLoader(body))
	if err != nil {
		return nil, &ParseError{Message: "response is not valid JSON", Cause: err}
	}
	if !result.Valid() {
		return nil, newSchemaError(result.Errors())
	}

	var decoded scoresResponse
	if err := json.Unmarshal(body, &decoded); err != nil {
		return nil, &ParseError{Message: "failed to decode response", Cause: err}
	}

	wiki, ok := decoded.Scores[c.opts.WikiID]
	if !ok {
		return nil, &SchemaError{Message: fmt.Sprintf("no scores for wiki %q", c.opts.WikiID)}
	}
	model, ok := wiki[modelName]
	if !ok {
		return nil, &SchemaError{Message: fmt.Sprintf("no %s scores for wiki %q", modelName, c.opts.WikiID)}
	}

	predictions := make(PredictionStore, len(model.Scores))
	for revID, score := range model.Scores {
		if score.Error != nil {
			log.Printf("ores: no score for revision %s: %s", revID, score.Error.Message)
			continue
		}
		predictions[revID] = Prediction{
			RevisionID:    revID,
			Rating:        score.Prediction,
			Probabilities: score.Probability,
		}
	}
	return predictions, nil
}
