package printer

import (
	"fmt"
	"html"

	"github.com/joshuapare/dtbkit/dtb"
	"github.com/joshuapare/dtbkit/dtb/render"
)

const htmlPrelude = `<!DOCTYPE html>
<html>
<head>
	<meta charset="utf-8">
	<meta name="viewport" content="width=device-width, initial-scale=1">
	<title>dtbkit</title>
</head>
<body>

<main>
<section id="tree">
`

const htmlPostlude = `</section>
</main>
</body>
<style type="text/css">
section#tree { font-size: 1.2em; }
section#tree { max-width: fit-content; }
section#tree > div.node { border: solid 1px; }
section#tree div.node {
	display: flex;
	flex-direction: row;
	align-items: stretch;
	background-color: rgba(0, 0, 150, 0.04);
	flex-grow: 1;
}
section#tree div.node:not(:last-child) { border-bottom: solid 1px; }
section#tree .node-header { display: flex; flex-direction: column; padding: .1em 1em; justify-content: center; }
section#tree .node-header .node-name { margin-top: 0; margin-bottom: 0; align-content: center; }
section#tree .node-header .node-props { margin-top: 0; margin-bottom: 0; max-width: 30ch; }
section#tree .node-header .node-props { display: none; }
section#tree .node-header.active .node-props { display: block; }
section#tree div.children { flex-grow: 1; display: flex; flex-direction: column; }
</style>

<script type="text/javascript">
document.addEventListener('DOMContentLoaded', function () {
	document.querySelectorAll('section#tree .node-header').forEach((el) => {
		el.addEventListener('click', () => {
			if (document.getSelection().type !== 'Range')
				el.classList.toggle('active')
		})
	})
})
</script>
</html>
`

// printTreeHTML writes a standalone HTML document: nested node boxes whose
// headers toggle their property lists on click.
func (p *Printer) printTreeHTML(tree *dtb.Tree) error {
	if _, err := fmt.Fprint(p.writer, htmlPrelude); err != nil {
		return err
	}
	if err := p.writeHTMLNode(tree.Root); err != nil {
		return err
	}
	_, err := fmt.Fprint(p.writer, htmlPostlude)
	return err
}

func (p *Printer) writeHTMLNode(n *dtb.Node) error {
	if _, err := fmt.Fprint(p.writer, `<div class="node">`); err != nil {
		return err
	}

	name := n.Name
	if name == "" {
		name = "/"
	}
	if n.Symbol != "" {
		name = n.Symbol + ": " + name
	}
	fmt.Fprint(p.writer, `<div class="node-header">`)
	fmt.Fprintf(p.writer, `<p class="node-name">%s</p>`, html.EscapeString(name))
	if p.opts.ShowProps && len(n.Props) > 0 {
		fmt.Fprint(p.writer, `<ul class="node-props">`)
		for _, prop := range n.Props {
			if len(prop.Value) == 0 {
				fmt.Fprintf(p.writer, "<li>%s;</li>", html.EscapeString(prop.Name))
			} else {
				fmt.Fprintf(p.writer, "<li>%s: %s;</li>",
					html.EscapeString(prop.Name),
					html.EscapeString(render.Value(prop.Value, prop.Name)))
			}
		}
		fmt.Fprint(p.writer, "</ul>")
	}
	fmt.Fprint(p.writer, "</div>")

	if len(n.Children) > 0 {
		fmt.Fprint(p.writer, `<div class="children">`)
		for _, child := range n.Children {
			if err := p.writeHTMLNode(child); err != nil {
				return err
			}
		}
		fmt.Fprint(p.writer, "</div>")
	}
	_, err := fmt.Fprintln(p.writer, "</div>")
	return err
}
