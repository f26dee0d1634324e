package dataset

import (
	"encoding/hex"
	"math/rand"

	"github.com/crimson-sun/stanza/internal/model"
)

// Phrase banks for the synthetic corpus. Bodies are keyed by department and
// polarity; titles by polarity only, so titles alone cannot separate
// departments.
var (
	housekeepingPos = []string{"camera pulita e profumata", "staff cordiale e disponibile", "letto comodo", "colazione abbondante"}
	housekeepingNeg = []string{"camera sporca", "staff scortese", "letto scomodo", "lenzuola macchiate"}

	receptionPos = []string{"check-in veloce", "personale accogliente", "pagamento senza problemi", "accoglienza calorosa"}
	receptionNeg = []string{"lunghe attese al check-in", "personale scortese", "errori nel pagamento", "servizio lento"}

	foodBeveragePos = []string{"colazione ricca e varia", "ristorante eccellente", "cameriere attento", "porzioni abbondanti"}
	foodBeverageNeg = []string{"colazione scarsa", "servizio lento", "menu limitato", "porzioni scarse"}

	titlesPos = []string{"Eccellente soggiorno!", "Servizio impeccabile", "Esperienza fantastica", "Consigliatissimo!"}
	titlesNeg = []string{"Deludente esperienza", "Servizio pessimo", "Non tornerò mai più", "Molto insoddisfatto"}
)

var bodyBank = map[string]map[string][]string{
	"Housekeeping": {"positive": housekeepingPos, "negative": housekeepingNeg},
	"Reception":    {"positive": receptionPos, "negative": receptionNeg},
	"F&B":          {"positive": foodBeveragePos, "negative": foodBeverageNeg},
}

// Generate produces a balanced synthetic dataset of n reviews (rounded down
// to a multiple of 6): n/6 records per (department, sentiment) bucket, row
// order shuffled. The output is fully determined by (n, seed).
func Generate(n int, seed int64) Dataset {
	rng := rand.New(rand.NewSource(seed))
	perBucket := n / (len(model.Departments) * len(model.Sentiments))

	var ds Dataset
	for _, dept := range model.Departments {
		for _, sent := range model.Sentiments {
			for i := 0; i < perBucket; i++ {
				title, body := synthesize(rng, dept, sent)
				ds = append(ds, model.Review{
					ID:         hexToken(rng),
					Title:      title,
					Body:       body,
					Department: dept,
					Sentiment:  sent,
				})
			}
		}
	}

	rng.Shuffle(len(ds), func(i, j int) { ds[i], ds[j] = ds[j], ds[i] })
	return ds
}

// synthesize draws a title by polarity and a body by (department, polarity).
func synthesize(rng *rand.Rand, department, sentiment string) (title, body string) {
	titles := titlesPos
	if sentiment == "negative" {
		titles = titlesNeg
	}
	bodies := bodyBank[department][sentiment]
	return titles[rng.Intn(len(titles))], bodies[rng.Intn(len(bodies))]
}

// hexToken draws a 12-hex-char review ID from the seeded stream. Collisions
// are possible but vanishingly unlikely at demo scale; not checked.
func hexToken(rng *rand.Rand) string {
	buf := make([]byte, 6)
	rng.Read(buf)
	return hex.EncodeToString(buf)
}
