// Command wordfeed demonstrates the strukt packages working together: it
// scrambles the closing paragraphs of Camus's L'Étranger into keyed words,
// then restores the text twice — once through a red-black tree's inorder
// walk, once by draining a pair of merged Fibonacci heaps — and finishes
// with a hash-table lookup and a Rabin-Karp occurrence count.
package main

import (
	"math/rand"
	"os"
	"strings"

	"github.com/rs/zerolog"

	"github.com/varlogue/strukt/fibheap"
	"github.com/varlogue/strukt/hashtable"
	"github.com/varlogue/strukt/ilist"
	"github.com/varlogue/strukt/rbtree"
	"github.com/varlogue/strukt/strmatch"
)

const paragraphA = `Pour la première fois depuis bien longtemps, j'ai pensé ` +
	`à maman. Il m'a semblé que je comprenais pourquoi à la fin d'une vie ` +
	`elle avait pris un « fiancé », pourquoi elle avait joué à recommencer. ` +
	`Là-bas, là-bas aussi, autour de cet asile où des vies s'éteignaient, ` +
	`le soir était comme une trêve mélancolique. Si près de la mort, maman ` +
	`devait s'y sentir libérée et prête à tout revivre.`

const paragraphB = `Personne, personne n'avait le droit de pleurer sur elle. ` +
	`Et moi aussi, je me suis senti prêt à tout revivre. Comme si cette ` +
	`grande colère m'avait purgé du mal, vidé d'espoir, devant cette nuit ` +
	`chargée de signes et d'étoiles, je m'ouvrais pour la première fois à ` +
	`la tendre indifférence du monde. De l'éprouver si pareil à moi, si ` +
	`fraternel enfin, j'ai senti que j'avais été heureux, et que je l'étais ` +
	`encore.`

// word pairs a position key with the word found there.
type word struct {
	key int
	str string
}

// indexed is a hash-table entry: a word plus its intrusive link.
type indexed struct {
	word
	link ilist.Link[indexed]
}

// wordCmp orders words by position; it serves both the tree and the heaps.
func wordCmp(a, b word) int { return a.key - b.key }

// scramble splits text into positioned words and shuffles them.
func scramble(text string, rng *rand.Rand) []word {
	fields := strings.Fields(text)
	ws := make([]word, len(fields))
	for i, f := range fields {
		ws[i] = word{key: i, str: f}
	}
	rng.Shuffle(len(ws), func(i, j int) { ws[i], ws[j] = ws[j], ws[i] })

	return ws
}

// restoreViaTree feeds scrambled words through a red-black tree and reads
// them back in key order, exercising a stray insert+delete on the way.
func restoreViaTree(log zerolog.Logger, ws []word) string {
	tr := rbtree.New(wordCmp)
	for _, w := range ws {
		tr.Insert(rbtree.NewNode(w))
	}

	// Insert a word that does not belong, then get rid of it again.
	stray := rbtree.NewNode(word{key: len(ws) / 2, str: "dummy"})
	tr.Insert(stray)
	tr.Delete(stray)

	var sb strings.Builder
	tr.InorderWalk(func(n *rbtree.Node[word]) {
		if sb.Len() > 0 {
			sb.WriteByte(' ')
		}
		sb.WriteString(n.Value().str)
	})

	log.Info().Int("words", tr.Len()).Msg("paragraph restored via rbtree inorder walk")

	return sb.String()
}

// restoreViaHeaps splits the scrambled words across two heaps, merges them
// with Union, and drains the result in key order.
func restoreViaHeaps(log zerolog.Logger, ws []word) string {
	h1 := fibheap.New(wordCmp)
	h2 := fibheap.New(wordCmp)
	for i, w := range ws {
		if i%2 == 0 {
			h1.Insert(fibheap.NewNode(w))
		} else {
			h2.Insert(fibheap.NewNode(w))
		}
	}

	// Trigger a consolidation by inserting a stray word and deleting it.
	stray := fibheap.NewNode(word{key: -1, str: "dummy"})
	h1.Insert(stray)
	h1.Delete(stray)

	h1.Union(h2)
	log.Info().
		Int("words", h1.Len()).
		Bool("second_heap_empty", h2.Empty()).
		Msg("heaps merged")

	var sb strings.Builder
	for !h1.Empty() {
		if sb.Len() > 0 {
			sb.WriteByte(' ')
		}
		sb.WriteString(h1.ExtractMin().Value().str)
	}

	return sb.String()
}

// indexWords loads every word into a chained hash table keyed by spelling.
func indexWords(ws []word) *hashtable.Table[indexed, string] {
	tbl := hashtable.New(
		64,
		func(s string) uint {
			h := uint(5381)
			for i := 0; i < len(s); i++ {
				h = h*33 + uint(s[i])
			}

			return h
		},
		func(e *indexed, key string) bool { return e.str == key },
	)

	for _, w := range ws {
		e := &indexed{word: w}
		e.link.Attach(e)
		tbl.Insert(&e.link, e.str)
	}

	return tbl
}

func main() {
	output := zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: "15:04:05"}
	log := zerolog.New(output).With().Timestamp().Logger()

	rng := rand.New(rand.NewSource(40)) // the original demo's dummy key

	log.Info().Msg("for those who like Camus")

	// 1) Red-black tree restores the first paragraph.
	textA := restoreViaTree(log, scramble(paragraphA, rng))
	if textA != paragraphA {
		log.Fatal().Msg("rbtree failed to restore the paragraph")
	}
	os.Stdout.WriteString(textA + "\n\n")

	// 2) Two Fibonacci heaps, merged, restore the second.
	textB := restoreViaHeaps(log, scramble(paragraphB, rng))
	if textB != paragraphB {
		log.Fatal().Msg("fibheap failed to restore the paragraph")
	}
	os.Stdout.WriteString(textB + "\n")

	// 3) Hash-table lookups over the second paragraph's words.
	tbl := indexWords(scramble(paragraphB, rng))
	for _, probe := range []string{"personne", "haine"} {
		if e := tbl.Search(probe); e != nil {
			log.Info().Str("word", probe).Int("position", e.key).Msg("indexed")
		} else {
			log.Info().Str("word", probe).Msg("not in paragraph")
		}
	}

	// 4) Rabin-Karp occurrence counts, multi-byte characters included.
	for _, pattern := range []string{"je", "première", "é"} {
		log.Info().
			Str("pattern", pattern).
			Int("count", strmatch.CountRK(paragraphB, pattern)).
			Msg("rabin-karp")
	}
}
