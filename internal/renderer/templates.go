package renderer

// browsePage renders a listing.Page. Breadcrumb paths are cumulative
// prefixes without a leading slash except the root, which is "/" itself.
const browsePage = `<!DOCTYPE html>
<html lang="en">
<head>
    <meta charset="UTF-8">
    <meta name="viewport" content="width=device-width, initial-scale=1.0">
    <title>Index of {{.Path}}</title>
    <link rel="stylesheet" href="https://cdnjs.cloudflare.com/ajax/libs/font-awesome/5.15.4/css/all.min.css">
    <style>
        * { margin: 0; padding: 0; box-sizing: border-box; }
        body {
            font-family: -apple-system, BlinkMacSystemFont, "Segoe UI", Roboto, sans-serif;
            background: #f5f5f5;
            color: #495057;
            padding: 20px;
        }
        .container {
            max-width: 960px;
            margin: 0 auto;
            background: white;
            border-radius: 8px;
            box-shadow: 0 2px 8px rgba(0,0,0,0.1);
            overflow: hidden;
        }
        header { padding: 24px 30px; border-bottom: 1px solid #dee2e6; }
        .breadcrumbs { font-size: 18px; }
        .breadcrumbs a { color: #667eea; text-decoration: none; }
        .breadcrumbs a:hover { text-decoration: underline; }
        .breadcrumbs .sep { color: #868e96; padding: 0 4px; }
        table { width: 100%; border-collapse: collapse; }
        th, td { text-align: left; padding: 10px 16px; }
        th { font-size: 12px; text-transform: uppercase; color: #868e96; border-bottom: 1px solid #dee2e6; }
        tr:hover td { background: #f8f9fa; }
        td.icon { width: 32px; color: #868e96; }
        td.size, td.date { white-space: nowrap; color: #868e96; }
        td.name a { color: #495057; text-decoration: none; }
        td.name a:hover { color: #667eea; }
    </style>
</head>
<body>
    <div class="container">
        <header>
            <nav class="breadcrumbs">
                {{- range $i, $b := .Breadcrumbs}}
                {{- if $i}}<span class="sep">/</span>{{end -}}
                <a href="/{{if ne $b.Path "/"}}{{$b.Path}}{{end}}">{{$b.Label}}</a>
                {{- end}}
            </nav>
        </header>
        <table>
            <thead>
                <tr><th></th><th>Name</th><th>Size</th><th>Uploaded</th></tr>
            </thead>
            <tbody>
                {{- range .Rows}}
                <tr>
                    <td class="icon"><i class="fas {{.Icon}}"></i></td>
                    <td class="name"><a href="{{.Href}}">{{.Label}}</a></td>
                    <td class="size"{{with .ExactSize}} title="{{.}}"{{end}}>{{.Size}}</td>
                    <td class="date">{{.Date}}</td>
                </tr>
                {{- end}}
            </tbody>
        </table>
    </div>
</body>
</html>
`

// errorPage is the caller-facing page for every failed request.
const errorPage = `<!DOCTYPE html>
<html lang="en">
<head>
    <meta charset="UTF-8">
    <title>{{.Status}} {{.Text}}</title>
    <style>
        body {
            font-family: -apple-system, BlinkMacSystemFont, "Segoe UI", Roboto, sans-serif;
            background: #f5f5f5;
            color: #495057;
            display: flex;
            align-items: center;
            justify-content: center;
            min-height: 100vh;
        }
        h1 { font-weight: 500; }
    </style>
</head>
<body>
    <h1>{{.Status}} {{.Text}}</h1>
</body>
</html>
`
