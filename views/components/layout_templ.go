// Code generated by templ - DO NOT EDIT.

// templ: version: v0.2.793
package components

//lint:file-ignore SA4006 This context is only used if a nested component is present.

import "github.com/a-h/templ"
import templruntime "github.com/a-h/templ/runtime"

// Layout wraps body in the shared page shell.
func Layout(title string, body templ.Component) templ.Component {
	return templruntime.GeneratedTemplate(func(templ_7745c5c3_Input templruntime.GeneratedComponentInput) (templ_7745c5c3_Err error) {
		templ_7745c5c3_W, ctx := templ_7745c5c3_Input.Writer, templ_7745c5c3_Input.Context
		if templ_7745c5c3_CtxErr := ctx.Err(); templ_7745c5c3_CtxErr != nil {
			return templ_7745c5c3_CtxErr
		}
		templ_7745c5c3_Buffer, templ_7745c5c3_IsBuffer := templruntime.GetBuffer(templ_7745c5c3_W)
		if !templ_7745c5c3_IsBuffer {
			defer func() {
				templ_7745c5c3_BufErr := templruntime.ReleaseBuffer(templ_7745c5c3_Buffer)
				if templ_7745c5c3_Err == nil {
					templ_7745c5c3_Err = templ_7745c5c3_BufErr
				}
			}()
		}
		ctx = templ.InitializeContext(ctx)
		templ_7745c5c3_Var1 := templ.GetChildren(ctx)
		if templ_7745c5c3_Var1 == nil {
			templ_7745c5c3_Var1 = templ.NopComponent
		}
		ctx = templ.ClearChildren(ctx)
		_, templ_7745c5c3_Err = templ_7745c5c3_Buffer.WriteString("<!doctype html><html lang=\"en\"><head><meta charset=\"utf-8\"><meta name=\"viewport\" content=\"width=device-width, initial-scale=1\"><title>")
		if templ_7745c5c3_Err != nil {
			return templ_7745c5c3_Err
		}
		var templ_7745c5c3_Var2 string
		templ_7745c5c3_Var2, templ_7745c5c3_Err = templ.JoinStringErrs(title)
		if templ_7745c5c3_Err != nil {
			return templ.Error{Err: templ_7745c5c3_Err, FileName: `views/components/layout.templ`, Line: 10, Col: 17}
		}
		_, templ_7745c5c3_Err = templ_7745c5c3_Buffer.WriteString(templ.EscapeString(templ_7745c5c3_Var2))
		if templ_7745c5c3_Err != nil {
			return templ_7745c5c3_Err
		}
		_, templ_7745c5c3_Err = templ_7745c5c3_Buffer.WriteString("</title><style>\n\t\t\t\tbody { font-family: system-ui, sans-serif; background: #1d2330; color: #eee; }\n\t\t\t\t.container { max-width: 48rem; margin: 2rem auto; }\n\t\t\t\theader { display: flex; gap: 1.5rem; font-size: 1.25rem; }\n\t\t\t\t.banner, .next-level, .game-over, .restart, .loading { color: #ffd866; }\n\t\t\t\t.words { columns: 4; list-style: none; padding: 0; font-family: monospace; }\n\t\t\t\t.word[data-found] { font-weight: bold; color: #fff; }\n\t\t\t\t.word[data-palette=\"0\"] { color: #7fb4ff; } .word[data-palette=\"1\"] { color: #8fe388; }\n\t\t\t\t.word[data-palette=\"2\"] { color: #ffb86c; } .word[data-palette=\"3\"] { color: #ff7a90; }\n\t\t\t\t.word[data-palette=\"4\"] { color: #c39bff; }\n\t\t\t\t.letters { display: flex; gap: .5rem; min-height: 3.5rem; margin: 1rem 0; }\n\t\t\t\t.letter { font-size: 2.5rem; width: 3rem; text-align: center; border-radius: .3rem; background: #2c3446; }\n\t\t\t\t.letter[data-color=\"dim\"] { color: #ccc; }\n\t\t\t\t.letter[data-color=\"selected\"] { color: #fff; background: #3d4b66; }\n\t\t\t</style></head><body><main class=\"container\">")
		if templ_7745c5c3_Err != nil {
			return templ_7745c5c3_Err
		}
		templ_7745c5c3_Err = body.Render(ctx, templ_7745c5c3_Buffer)
		if templ_7745c5c3_Err != nil {
			return templ_7745c5c3_Err
		}
		_, templ_7745c5c3_Err = templ_7745c5c3_Buffer.WriteString("</main></body></html>")
		if templ_7745c5c3_Err != nil {
			return templ_7745c5c3_Err
		}
		return templ_7745c5c3_Err
	})
}

var _ = templruntime.GeneratedTemplate
