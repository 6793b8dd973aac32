// Package zeroentropy provides a Go client SDK for ZeroEntropy,
// a semantic search engine over collections of documents.
//
// The SDK covers collection management, document ingestion with
// server-side parsing and indexing, retrieval queries at document, page
// and snippet granularity, and reranking.
//
// Basic usage:
//
//	client, err := zeroentropy.New("your-api-key")
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	// Create a collection and ingest a document
//	if err := client.Collections.Add(ctx, "docs"); err != nil {
//	    log.Fatal(err)
//	}
//	err = client.Documents.AddText(ctx, "docs", "notes/hello.txt", "Hello, search!")
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	// Search once indexing completes
//	results, err := client.Queries.TopSnippets(ctx, zeroentropy.TopSnippetsParams{
//	    Collection: "docs",
//	    Query:      "greeting",
//	    K:          5,
//	})
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	for _, r := range results {
//	    fmt.Printf("%.3f %s\n", r.Score, r.Content)
//	}
package zeroentropy
