package styles

import (
	"strings"
)

// Entry is one reference painting: the static asset path, the label shown
// to the customer, and the generation prompt describing the technique.
// Entries within a pack are ordered best-first; the 5-image tier takes the
// first five.
type Entry struct {
	Path   string
	Title  string
	Artist string
	Prompt string
}

type Pack struct {
	ID      int
	Name    string
	Entries []Entry
}

// Pack ids match the values the storefront sends.
const (
	PackMasters            = 13
	PackImpressionColor    = 14
	PackModernAbstract     = 15
	PackAncientWorlds      = 16
	PackEvolutionPortraits = 17
	PackRoyaltyPortraits   = 18
)

// Portrait modes. Realistic keeps the photo's rendering; artistic pushes
// the result toward a full painterly reinterpretation.
const (
	ModeRealistic = "realistic"
	ModeArtistic  = "artistic"
)

// NormalizeMode maps unknown or empty modes to realistic.
func NormalizeMode(mode string) string {
	mode = strings.ToLower(strings.TrimSpace(mode))
	if mode != ModeArtistic {
		return ModeRealistic
	}
	return mode
}

// NormalizeTier maps anything that is not a known tier to the small tier.
func NormalizeTier(tier int) int {
	if tier != 15 {
		return 5
	}
	return tier
}

const preserveMarker = ". Preserve"

// brushworkPhrase is spliced into every prompt ahead of the identity
// instruction so the model reproduces the painting's surface, not just
// its palette.
const brushworkPhrase = " CRITICAL: Replicate the exact brushwork, stroke direction, paint texture, and color palette " +
	"of the original painting. Use visible brushstrokes matching the painting's technique, impasto " +
	"where thick, smooth blending where soft. Match the original's color temperature and palette. " +
	"The result must look like an actual oil painting with authentic brush marks and surface quality. "

// artisticSuffix is appended in artistic mode only.
const artisticSuffix = " Make the result strongly artistic and painterly. Emphasize visible brushwork, " +
	"bold impasto texture, and pronounced brushstrokes. The output must look like a " +
	"real oil painting with thick, expressive paint application, not smooth or digital. " +
	"Paint the subject fully in the style of this artwork: reimagine their clothing, " +
	"setting, lighting, and pose as if they were an original subject of this painting. " +
	"Take full artistic liberties to make the portrait feel authentically part of this " +
	"artistic tradition. Do not simply apply a filter, but truly render them as a " +
	"painted subject in this style."

const fallbackPrompt = "in the style of classical portrait painting. Preserve the subject's face and identity."

// Catalog is the fixed set of style packs. The per-order generation plan is
// derived from it at order creation and never changes afterwards.
type Catalog struct {
	packs map[int]*Pack
}

func NewCatalog() *Catalog {
	packs := make(map[int]*Pack, len(allPacks))
	for i := range allPacks {
		packs[allPacks[i].ID] = &allPacks[i]
	}
	return &Catalog{packs: packs}
}

func (c *Catalog) PackByID(id int) (*Pack, bool) {
	p, ok := c.packs[id]
	return p, ok
}

func (c *Catalog) ValidStyleID(id int) bool {
	_, ok := c.packs[id]
	return ok
}

// Plan returns the ordered asset paths for an order: the first five entries
// for tier 5, all entries for tier 15.
func (c *Catalog) Plan(styleID, packTier int) ([]string, bool) {
	pack, ok := c.packs[styleID]
	if !ok {
		return nil, false
	}

	n := NormalizeTier(packTier)
	if n > len(pack.Entries) {
		n = len(pack.Entries)
	}

	paths := make([]string, 0, n)
	for _, e := range pack.Entries[:n] {
		paths = append(paths, e.Path)
	}
	return paths, true
}

// Lookup resolves a style image URL back to its catalog entry by matching
// the asset filename, so orders keep working even when the public base URL
// changes between creation and processing.
func (c *Catalog) Lookup(styleID int, styleURL string) (*Entry, bool) {
	pack, ok := c.packs[styleID]
	if !ok {
		return nil, false
	}

	for i := range pack.Entries {
		if strings.HasSuffix(styleURL, fileName(pack.Entries[i].Path)) {
			return &pack.Entries[i], true
		}
	}
	return nil, false
}

// Prompt builds the full generation prompt for an entry in the given mode.
// A nil entry yields a generic painting prompt.
func (c *Catalog) Prompt(entry *Entry, mode string) string {
	base := fallbackPrompt
	if entry != nil {
		base = entry.Prompt
	}

	prompt := base
	if strings.Contains(base, preserveMarker) {
		prompt = strings.Replace(base, preserveMarker, "."+brushworkPhrase+"Preserve", 1)
	}

	if NormalizeMode(mode) == ModeArtistic {
		prompt += artisticSuffix
	}
	return prompt
}

// Labels returns (title, artist) pairs for the first n results of a pack,
// in plan order.
func (c *Catalog) Labels(styleID, n int) [][2]string {
	pack, ok := c.packs[styleID]
	if !ok || n <= 0 {
		return nil
	}
	if n > len(pack.Entries) {
		n = len(pack.Entries)
	}

	labels := make([][2]string, 0, n)
	for _, e := range pack.Entries[:n] {
		labels = append(labels, [2]string{e.Title, e.Artist})
	}
	return labels
}

func fileName(path string) string {
	if i := strings.LastIndex(path, "/"); i >= 0 {
		return path[i:]
	}
	return "/" + path
}
