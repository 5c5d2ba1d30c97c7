package display

// boardTemplates renders engine results and snapshots. Each define is looked
// up by name in Renderer.Render.
const boardTemplates = `
{{ define "actor" -}}
{{ .Name }} (rank {{ .Rank }}, {{ money .Cash }}, {{ .Credit }}cr
{{- if .RehearsalBonus }}, +{{ .RehearsalBonus }} rehearsed{{ end }})
{{- end }}

{{ define "role" -}}
{{ if .Extra }}extra{{ else }}star {{ .Slot }}{{ end }}: {{ .Name }}, rank {{ .Level }}
{{- with .Line }} "{{ . }}"{{ end }}
{{- if .Completed }} [shot]{{ else if .Holder }} [{{ .Holder }}]{{ end }}
{{- end }}

{{ define "scene" -}}
Scene {{ .Number }}: {{ .Name }} (budget {{ .Budget }}
{{- if ne .ExtrasBudget .Budget }}, extras {{ .ExtrasBudget }}{{ end }})
{{- with .Description }}
{{ . }}
{{- end }}
{{ if .Active }}Shots remaining: {{ .ShotsRemaining }} of {{ .TotalShots }}{{ else }}This scene has wrapped.{{ end }}
{{- range .Roles }}
  {{ template "role" . }}
{{- end }}
{{- end }}

{{ define "room" -}}
{{ .Name | upper }}
{{- with .Scene }}
{{ template "scene" . }}
{{- end }}
Exits: {{ join ", " .Adjacent }}
{{- with .Occupants }}
Here: {{ join ", " . }}
{{- end }}
{{- end }}

{{ define "move" -}}
{{ .Actor.Name }} walks from {{ .From }} to {{ .To.Name }}.
{{ template "room" .To }}
{{- end }}

{{ define "work" -}}
{{ .Actor.Name }} takes the {{ if .Role.Extra }}extra{{ else }}starring{{ end }} role of {{ .Role.Name }} in {{ .Scene }}.
{{- with .Role.Line }}
"{{ . }}"
{{- end }}
{{- end }}

{{ define "act" -}}
Rolled {{ .Roll }}{{ if .Bonus }} +{{ .Bonus }}{{ end }} = {{ .Total }} against a budget of {{ .Budget }}.
{{ if .Success }}That's a take! {{ .ShotsRemaining }} shot(s) left.{{ else }}Cut! {{ .Role }} will have to try again.{{ end }}
{{- with .Wrap }}
{{ template "wrap" . }}
{{- end }}
{{- end }}

{{ define "wrap" -}}
That's a wrap on {{ .SceneName }}!
{{- with .Dice }}
Bonus dice: {{ join " " . }}
{{- end }}
{{- range .Payouts }}
  {{ .Actor }} ({{ .Role }}{{ if .Extra }}, extra{{ end }}) earns {{ money .Cash }}
{{- end }}
{{- end }}

{{ define "rehearse" -}}
{{ .Actor.Name }} rehearses: +{{ .Bonus }} of a possible +{{ .Limit }}.
{{- end }}

{{ define "abandon" -}}
{{ .Actor.Name }} gives up the role of {{ .Role }}.
{{- end }}

{{ define "upgrade" -}}
{{ .Actor.Name }} is now rank {{ .Rank }}, for {{ if eq .Payment "cash" }}{{ money .Cost }}{{ else }}{{ .Cost }} credits{{ end }}.
{{- end }}

{{ define "turn" -}}
{{ .Previous.Name }} ends the turn.
{{- if .GameOver }}
The game is over!
{{ template "scores" .Scores }}
{{- else }}
{{- if .DayEnded }}
Day {{ .Day }} begins. Everyone is back in the trailer and new scenes are dealt.
{{- end }}
It is {{ .Next.Name }}'s turn.
{{- end }}
{{- end }}

{{ define "roster" -}}
{{ range $i, $a := . }}{{ if $i }}
{{ end }}{{ if .Current }}> {{ else }}  {{ end }}{{ template "actor" . }} in {{ .RoomName }}
{{- with .Role }}, working {{ . }}{{ end }}{{ end }}
{{- end }}

{{ define "roles" -}}
{{ if not . }}There are no roles you can take here.{{ else }}Roles you can take:
{{- range . }}
  {{ template "role" . }}
{{- end }}{{ end }}
{{- end }}

{{ define "prices" -}}
{{ if not . }}You are already at the top rank.{{ else }}Rank   Cash  Credit
{{- range . }}
{{ printf "%4d  %5s  %6d" .Rank (money .Cash) .Credit }}
{{- end }}{{ end }}
{{- end }}

{{ define "scores" -}}
Final standings:
{{- range . }}
{{ .Place }}. {{ .Name }}: {{ .Total }} points (rank {{ .Rank }}, {{ money .Cash }}, {{ .Credit }}cr)
{{- end }}
{{- end }}

{{ define "board" -}}
Day {{ .Day }} of {{ .MaxDay }}{{ if .Over }}, the game is over{{ end }}. {{ .Deck }} scene card(s) left in the deck.
{{ template "roster" .Actors }}
{{- range .Rooms }}

{{ template "room" . }}
{{- end }}
{{- end }}
`
