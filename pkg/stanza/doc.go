// Package stanza provides a hotel review classifier that predicts a
// department (Housekeeping, Reception, F&B) and a sentiment polarity
// (positive, negative) for free-text reviews.
//
// Quick start:
//
//	c, err := stanza.New(stanza.WithModelsDir("models/"))
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	p, _ := c.Predict("Eccellente soggiorno!", "colazione ricca e varia")
//	fmt.Println(p.Department, p.Sentiment) // F&B positive
//
// The Classifier is safe for concurrent use. Create once, reuse across
// requests.
package stanza
