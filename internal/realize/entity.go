package realize

import (
	"math/rand"
	"regexp"

	"github.com/jtoivan/statnews/internal/model"
)

var entityTag = regexp.MustCompile(`^\[ENTITY:([^:]+):([^\]]+)\]$`)

// NameResolver produces one surface form of an entity.
type NameResolver interface {
	Resolve(rng *rand.Rand, entity string) string
}

// DictionaryNameResolver maps entity identifiers to names.
type DictionaryNameResolver map[string]string

func (d DictionaryNameResolver) Resolve(rng *rand.Rand, entity string) string {
	if name, ok := d[entity]; ok {
		return name
	}
	return "UNKNOWN-ENTITY:" + entity
}

// VariantsNameResolver picks one of a fixed set of forms, e.g. pronouns.
type VariantsNameResolver []string

func (v VariantsNameResolver) Resolve(rng *rand.Rand, entity string) string {
	return v[rng.Intn(len(v))]
}

// EntityResolver rewrites [ENTITY:type:id] tags into names. The first
// mention of an entity uses its full name; a mention directly after
// another mention of the same entity uses a pronoun; any later mention
// uses the short name. State resets per document.
type EntityResolver struct {
	// forms maps entity type to the "full", "short" and "pronoun"
	// resolvers of one language.
	forms map[string]map[string]NameResolver
}

// NewEntityResolver builds an entity resolver from per-type name forms.
func NewEntityResolver(forms map[string]map[string]NameResolver) *EntityResolver {
	return &EntityResolver{forms: forms}
}

// Run realizes every entity tag in the plan.
func (e *EntityResolver) Run(rng *rand.Rand, root *model.Branch) {
	previous := map[string]string{}
	encountered := map[string]bool{}
	e.recurse(rng, root, previous, encountered)
}

func (e *EntityResolver) recurse(rng *rand.Rand, node model.Node, previous map[string]string, encountered map[string]bool) {
	switch node := node.(type) {
	case *model.Branch:
		for _, child := range node.Children {
			e.recurse(rng, child, previous, encountered)
		}
	case *model.Message:
		if node.Template == nil {
			return
		}
		for _, c := range node.Template.Components {
			slot, ok := c.(*model.Slot)
			if !ok {
				continue
			}
			groups := entityTag.FindStringSubmatch(slot.Value())
			if groups == nil {
				continue
			}
			entityType, entity := groups[1], groups[2]

			var nameType string
			switch {
			case previous[entityType] == entity:
				nameType = "pronoun"
			case encountered[entity]:
				nameType = "short"
			default:
				nameType = "full"
				encountered[entity] = true
			}
			slot.Attributes["name_type"] = nameType
			slot.Attributes["entity_type"] = entityType
			previous[entityType] = entity

			resolver := e.forms[entityType][nameType]
			if resolver == nil {
				continue
			}
			slot.Resolve(resolver.Resolve(rng, entity))
		}
	}
}
