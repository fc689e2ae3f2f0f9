package rendering

// Palette holds the color variables one template variant applies over the
// fixed structural layout. Values are CSS color or background expressions.
type Palette struct {
	Primary       string // heading text color
	Accent        string // section bar background
	SectionBorder string
	Background    string // page background
}

// Template IDs form a small closed enumeration; anything outside it falls
// back to the neutral default palette.
const (
	TemplateBlue    = 1
	TemplatePurple  = 2
	TemplateGray    = 3
	TemplateDefault = 4
)

// paletteFor maps a template ID to its palette. Unrecognized IDs get the
// neutral slate palette.
func paletteFor(templateID int) Palette {
	switch templateID {
	case TemplateBlue:
		return Palette{
			Primary:       "#1e3a8a",
			Accent:        "#2563eb",
			SectionBorder: "#bfdbfe",
			Background:    "#ffffff",
		}
	case TemplatePurple:
		return Palette{
			Primary:       "#581c87",
			Accent:        "linear-gradient(to right, #9333ea, #db2777)",
			SectionBorder: "#e9d5ff",
			Background:    "linear-gradient(to bottom right, #faf5ff, #fdf2f8)",
		}
	case TemplateGray:
		return Palette{
			Primary:       "#111827",
			Accent:        "#374151",
			SectionBorder: "#d1d5db",
			Background:    "#f9fafb",
		}
	default:
		return Palette{
			Primary:       "#0f172a",
			Accent:        "#1e293b",
			SectionBorder: "#cbd5e1",
			Background:    "#f8fafc",
		}
	}
}
