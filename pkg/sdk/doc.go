// Package resumedex provides an embedded Go client for the resumedex
// resume analysis and ranking engine backed by Redis.
//
// The client runs the full pipeline in-process: text normalization,
// phrase tagging, experience span extraction and TF-IDF ranking. Only
// the storage (Redis) and the optional document extraction service are
// external.
//
//	client, err := resumedex.New(ctx,
//	    resumedex.WithRedis("localhost:6379", ""),
//	    resumedex.WithTika("http://localhost:9998"),
//	)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	defer client.Close()
//
//	rec, _ := client.Resumes().Analyze(ctx, "jane-doe", rawText)
//	ranked, _ := client.Rank().Stored(ctx, jobDescription)
package resumedex
