// Code generated by templ - DO NOT EDIT.

// templ: version: v0.2.793
package pages

//lint:file-ignore SA4006 This context is only used if a nested component is present.

import "github.com/a-h/templ"
import templruntime "github.com/a-h/templ/runtime"

import (
	"wordgame/internal/viewmodel"
	"wordgame/views/components"
)

// GamePage renders the game screen. Its script sends typed keys in batches of
// at most Config.MaxKeys and swaps the round panel on every streamed update.
func GamePage(data viewmodel.GamePage) templ.Component {
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
		templ_7745c5c3_Err = components.Layout(data.Title, gameBody(data)).Render(ctx, templ_7745c5c3_Buffer)
		if templ_7745c5c3_Err != nil {
			return templ_7745c5c3_Err
		}
		return templ_7745c5c3_Err
	})
}

func gameBody(data viewmodel.GamePage) templ.Component {
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
		templ_7745c5c3_Var2 := templ.GetChildren(ctx)
		if templ_7745c5c3_Var2 == nil {
			templ_7745c5c3_Var2 = templ.NopComponent
		}
		ctx = templ.ClearChildren(ctx)
		_, templ_7745c5c3_Err = templ_7745c5c3_Buffer.WriteString("<div id=\"round\">")
		if templ_7745c5c3_Err != nil {
			return templ_7745c5c3_Err
		}
		templ_7745c5c3_Err = components.RoundFragment(data.Round).Render(ctx, templ_7745c5c3_Buffer)
		if templ_7745c5c3_Err != nil {
			return templ_7745c5c3_Err
		}
		_, templ_7745c5c3_Err = templ_7745c5c3_Buffer.WriteString("</div>")
		if templ_7745c5c3_Err != nil {
			return templ_7745c5c3_Err
		}
		templ_7745c5c3_Err = templ.JSONScript("game-config", data.Config).Render(ctx, templ_7745c5c3_Buffer)
		if templ_7745c5c3_Err != nil {
			return templ_7745c5c3_Err
		}
		_, templ_7745c5c3_Err = templ_7745c5c3_Buffer.WriteString("<script>\n\t\t(function () {\n\t\t\tvar config = JSON.parse(document.getElementById(\"game-config\").textContent);\n\t\t\tvar panel = document.getElementById(\"round\");\n\t\t\tvar queue = \"\";\n\t\t\tvar sending = false;\n\t\t\tfunction flush() {\n\t\t\t\tif (sending || queue === \"\") return;\n\t\t\t\tsending = true;\n\t\t\t\tvar batch = queue.slice(0, config.maxKeys);\n\t\t\t\tqueue = queue.slice(batch.length);\n\t\t\t\tfetch(\"/game/\" + config.id + \"/keys\", { method: \"POST\", body: new URLSearchParams({ keys: batch }) })\n\t\t\t\t\t.finally(function () { sending = false; flush(); });\n\t\t\t}\n\t\t\tdocument.addEventListener(\"keydown\", function (e) {\n\t\t\t\tvar k = \"\";\n\t\t\t\tif (e.key === \"Backspace\") k = \"\\b\";\n\t\t\t\telse if (e.key === \"Enter\") k = \"\\n\";\n\t\t\t\telse if (e.key === \" \") k = \" \";\n\t\t\t\telse if (e.key.length === 1 && /[a-z]/i.test(e.key)) k = e.key;\n\t\t\t\tif (k === \"\") return;\n\t\t\t\te.preventDefault();\n\t\t\t\tqueue += k;\n\t\t\t\tflush();\n\t\t\t});\n\t\t\tvar source = new EventSource(\"/game/\" + config.id + \"/stream\");\n\t\t\tsource.addEventListener(\"round\", function (e) { panel.innerHTML = e.data; });\n\t\t})();\n\t</script>")
		if templ_7745c5c3_Err != nil {
			return templ_7745c5c3_Err
		}
		return templ_7745c5c3_Err
	})
}

var _ = templruntime.GeneratedTemplate
