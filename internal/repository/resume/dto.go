package resume

import (
	"encoding/json"
	"fmt"

	domres "github.com/talentgrid/resumedex/internal/domain/resume"
)

// jsonDoc is the storage representation of a resume record.
type jsonDoc struct {
	Name       string   `json:"name"`
	Skills     []string `json:"skills"`
	Education  []string `json:"education"`
	Experience []string `json:"experience"`
	RawText    string   `json:"raw_text"`
}

func toJSONDoc(rec domres.Record) jsonDoc {
	return jsonDoc{
		Name:       rec.Name(),
		Skills:     rec.Skills(),
		Education:  rec.Education(),
		Experience: rec.Experience(),
		RawText:    rec.RawText(),
	}
}

// parseJSONGetResult decodes a JSON.GET "$" response, which wraps the
// document in a single-element array.
func parseJSONGetResult(name string, raw []byte) (domres.Record, error) {
	var docs []jsonDoc
	if err := json.Unmarshal(raw, &docs); err != nil {
		// Older payloads stored without a path wrapper.
		var doc jsonDoc
		if err2 := json.Unmarshal(raw, &doc); err2 != nil {
			return domres.Record{}, fmt.Errorf("unmarshal record %s: %w", name, err)
		}
		return fromJSONDoc(name, doc), nil
	}
	if len(docs) == 0 {
		return domres.Record{}, fmt.Errorf("empty JSON.GET result for %s", name)
	}
	return fromJSONDoc(name, docs[0]), nil
}

func fromJSONDoc(name string, doc jsonDoc) domres.Record {
	if doc.Name == "" {
		doc.Name = name
	}
	return domres.Reconstruct(doc.Name, doc.Skills, doc.Education, doc.Experience, doc.RawText)
}
