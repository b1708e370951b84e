package localize

import "regexp"

// Wiki markup recognized by Wikify. Modifiers do not nest: bold inside
// italics is not supported.
var (
	wikiBold      = regexp.MustCompile(`\*\*([^*/_]*)\*\*`)
	wikiItalic    = regexp.MustCompile(`//([^*/_]*)//`)
	wikiUnderline = regexp.MustCompile(`__([^*/_]*)__`)
	wikiRed       = regexp.MustCompile(`_r_([^*/_]*)_r_`)
	wikiBreak     = regexp.MustCompile(`_br_`)
	wikiLink      = regexp.MustCompile(`\[\[([^|]*)\|([^\]]*)\]\]`)
)

// Wikify converts lightweight wiki markup in a translated message to HTML:
//
//	**bold**        <b>bold</b>
//	//italic//      <i>italic</i>
//	__underline__   <u>underline</u>
//	_r_warning_r_   <font color=red>warning</font>
//	_br_            <br>
//	[[url|text]]    <a href="url">text</a>
//
// Keeping markup in the translatable strings lets translators move emphasis
// with the words instead of fighting surrounding HTML.
func Wikify(msg string) string {
	msg = wikiBold.ReplaceAllString(msg, "<b>$1</b>")
	msg = wikiItalic.ReplaceAllString(msg, "<i>$1</i>")
	msg = wikiUnderline.ReplaceAllString(msg, "<u>$1</u>")
	msg = wikiRed.ReplaceAllString(msg, "<font color=red>$1</font>")
	msg = wikiBreak.ReplaceAllString(msg, "<br>")
	msg = wikiLink.ReplaceAllString(msg, `<a href="$1">$2</a>`)
	return msg
}
