package render

const pageHTML = `<!doctype html>
<html lang="es">
<head>
  <meta charset="utf-8"/>
  <meta name="viewport" content="width=device-width, initial-scale=1"/>
  <title>{{.Title}}</title>
  <style>
    body{font-family:system-ui,Segoe UI,Roboto,Arial;margin:24px;max-width:1050px}
    .grid{display:grid;grid-template-columns:1fr;gap:14px}
    @media (min-width: 900px){ .grid2{grid-template-columns:1fr 1fr} }
    .card{border:1px solid #ddd;border-radius:14px;padding:16px}
    h1{margin:0 0 6px 0}
    h2{margin:0 0 10px 0;font-size:18px}
    .muted{color:#666;font-size:14px;margin:6px 0 0}
    table{border-collapse:collapse;width:100%}
    th,td{border-bottom:1px solid #eee;padding:8px;text-align:left;font-size:14px}
    th{background:#fafafa}
    tr.qualify td{background:#f3fbf3}
    .pill{display:inline-block;padding:6px 10px;border:1px solid #ddd;border-radius:999px;margin-right:6px}
  </style>
</head>
<body>
  <h1>{{.Title}}</h1>
  <p class="muted" id="updated">Última generación: {{.UpdatedAt}} (se actualiza al subir la Excel al repo)</p>

  <div class="grid grid2" style="margin-top:14px">
    <div class="card" id="groups">
      <h2>Grupos</h2>
      {{- range $i, $g := .Groups}}
      <div{{if $i}} style="margin-top:8px"{{end}} class="group" data-group="{{$g.Label}}"><span class="pill"><b>Grupo {{$g.Label}}</b></span> {{joined $g.Teams}}</div>
      {{- end}}
    </div>

    <div class="card" id="crosses">
      <h2>Cruces</h2>
      {{- range $i, $sf := .Crosses.Semifinals}}
      <div{{if $i}} style="margin-top:6px"{{end}} class="semifinal"><b>{{$sf.Label}}:</b> <span class="team-a">{{team $sf.A}}</span> vs <span class="team-b">{{team $sf.B}}</span></div>
      {{- end}}
      <div style="margin-top:10px" id="champion"><b>Campeón:</b> {{.Crosses.Final.Champion}}</div>
      <p class="muted">El campeón aparecerá cuando haya final calculable en la plantilla.</p>
    </div>
  </div>

  <div class="grid" style="margin-top:14px">
    <div class="card" id="matches">
      <h2>Partidos jugados</h2>
      {{- if .Matches}}
      <table>
        <thead>
          <tr><th>Fase</th><th>Pista</th><th>Ganador</th><th>Perdedor</th><th>Sets</th><th>Juegos</th></tr>
        </thead>
        <tbody>
          {{- range .Matches}}
          <tr><td>{{.Stage}}</td><td>{{.Court}}</td><td>{{.Winner}}</td><td>{{.Loser}}</td><td>{{.SetsWon}}-{{.SetsLost}}</td><td>{{.GamesWon}}-{{.GamesLost}}</td></tr>
          {{- end}}
        </tbody>
      </table>
      {{- else}}
      <p class="muted">Aún no hay partidos registrados.</p>
      {{- end}}
    </div>

    <div class="card" id="pending">
      <h2>Partidos pendientes</h2>
      {{- if .Pending}}
      <table>
        <thead>
          <tr><th>Grupo</th><th>Partido</th></tr>
        </thead>
        <tbody>
          {{- range .Pending}}
          <tr><td>{{.Group}}</td><td>{{.TeamA}} vs {{.TeamB}}</td></tr>
          {{- end}}
        </tbody>
      </table>
      {{- else}}
      <p class="muted">No quedan partidos de liguilla por jugar.</p>
      {{- end}}
    </div>

    <div class="grid grid2">
      {{- range .Groups}}
      <div class="card standings" data-group="{{.Label}}">
        <h2>Clasificación Grupo {{.Label}}</h2>
        {{- if .Standings}}
        <table>
          <thead><tr><th>Pos</th><th>Equipo</th><th>PJ</th><th>V</th><th>D</th><th>Dif_Sets</th><th>Dif_Juegos</th></tr></thead>
          <tbody>
            {{- range .Standings}}
            <tr{{if .Qualifies}} class="qualify"{{end}}><td>{{.Position}}</td><td>{{.Team}}</td><td>{{.Played}}</td><td>{{.Wins}}</td><td>{{.Losses}}</td><td>{{.SetDiff}}</td><td>{{.GameDiff}}</td></tr>
            {{- end}}
          </tbody>
        </table>
        {{- else}}
        <p class="muted">—</p>
        {{- end}}
      </div>
      {{- end}}
    </div>
  </div>

  <p class="muted" style="margin-top:14px">
    Desempates: victorias, diferencia de sets, diferencia de juegos, sets ganados, juegos ganados y orden alfabético.
  </p>
  {{- if .LiveReload}}
  <script>
    (function(){
      var proto = location.protocol === "https:" ? "wss://" : "ws://";
      var ws = new WebSocket(proto + location.host + "/ws");
      ws.onmessage = function(ev){
        try {
          var msg = JSON.parse(ev.data);
          if (msg.type === "SNAPSHOT_UPDATED") { location.reload(); }
        } catch (e) {}
      };
    })();
  </script>
  {{- end}}
</body>
</html>
`
