// Package identity assigns human-readable display names and marker colors to
// participants without requiring registration. Uniqueness within a meeting is
// best-effort: callers pass the names and colors already in use, and the
// generator avoids them while it can.
package identity

import "math/rand"

// maxNameAttempts caps the random retries before a colliding name is accepted.
const maxNameAttempts = 100

// Palette is the ordered set of marker colors. The first unused color is
// assigned; once all 15 are taken, colors repeat.
var Palette = []string{
	"#FF6B6B", "#4ECDC4", "#FFE66D", "#A78BFA", "#F97316",
	"#06B6D4", "#EC4899", "#84CC16", "#F43F5E", "#8B5CF6",
	"#14B8A6", "#EAB308", "#6366F1", "#22C55E", "#E11D48",
}

var adjectives = []string{
	"Алый", "Синий", "Бирюзовый", "Золотой", "Изумрудный",
	"Серебряный", "Лиловый", "Оранжевый", "Багровый", "Лазурный",
	"Медный", "Янтарный", "Нефритовый", "Рубиновый", "Сапфировый",
}

var animals = []string{
	"Тигр", "Волк", "Медведь", "Лис", "Орёл",
	"Ястреб", "Барс", "Лев", "Кот", "Сокол",
	"Рысь", "Олень", "Дельфин", "Пантера", "Филин",
	"Ворон", "Кречет", "Бизон", "Мустанг", "Кобра",
}

// Assign picks a display name and color not present in usedNames/usedColors.
// Color: first palette entry not in use, or a uniformly random one once the
// palette is exhausted. Name: "{adjective} {animal}" drawn at random, retried
// up to maxNameAttempts; after the cap the last candidate is accepted even if
// it collides. Duplicates past these points are accepted degradation, not
// errors.
func Assign(usedNames, usedColors map[string]struct{}) (name, color string) {
	color = ""
	for _, c := range Palette {
		if _, taken := usedColors[c]; !taken {
			color = c
			break
		}
	}
	if color == "" {
		color = Palette[rand.Intn(len(Palette))]
	}

	for attempts := 0; attempts < maxNameAttempts; attempts++ {
		adj := adjectives[rand.Intn(len(adjectives))]
		animal := animals[rand.Intn(len(animals))]
		name = adj + " " + animal
		if _, taken := usedNames[name]; !taken {
			return name, color
		}
	}
	return name, color
}
