package styles

import (
	"github.com/alecthomas/chroma/v2"
	"github.com/alecthomas/chroma/v2/styles"
)

func init() {
	styles.Register(JSONTheme)
	styles.Register(JSONLightTheme)
}

// JSONTheme is a dark chroma theme for item and attribute JSON
var JSONTheme = chroma.MustNewStyle("ddv", chroma.StyleEntries{
	chroma.Text:  "#eaeaea",
	chroma.Error: "#ff5555 bold",

	// Object keys
	chroma.NameTag:   "#8be9fd",
	chroma.NameLabel: "#8be9fd",

	// true, false, null
	chroma.KeywordConstant: "#ff79c6",

	chroma.String:       "#50fa7b",
	chroma.StringDouble: "#50fa7b",
	chroma.StringEscape: "#ffb86c",

	chroma.Number:        "#bd93f9",
	chroma.NumberFloat:   "#bd93f9",
	chroma.NumberInteger: "#bd93f9",

	// {}, [], :, ,
	chroma.Punctuation: "#6272a4",
})

// JSONLightTheme is a light theme variant
var JSONLightTheme = chroma.MustNewStyle("ddv-light", chroma.StyleEntries{
	chroma.Text:  "#383a42",
	chroma.Error: "#e45649 bold",

	chroma.NameTag:   "#0184bc",
	chroma.NameLabel: "#0184bc",

	chroma.KeywordConstant: "#a626a4",

	chroma.String:       "#50a14f",
	chroma.StringDouble: "#50a14f",
	chroma.StringEscape: "#986801",

	chroma.Number:        "#986801",
	chroma.NumberFloat:   "#986801",
	chroma.NumberInteger: "#986801",

	chroma.Punctuation: "#a0a1a7",
})
