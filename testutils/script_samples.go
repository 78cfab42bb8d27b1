package testutils

// SampleCodeJavaScript holds JavaScript samples keyed by rule ID.
var SampleCodeJavaScript = map[string][]CodeSample{
	"js-sql-injection": {
		{"const rows = await db.query(`SELECT * FROM users WHERE id = ${req.params.id}`);\n", "users.js", 1},
		{`
const rows = await db.query("SELECT * FROM users WHERE id = ?", [id]);
`, "users.js", 0},
		{`
const sql = "SELECT * FROM users WHERE name = '" + name + "'";
`, "users.js", 1},
		{"const rows = await db.query(`\n  SELECT * FROM users\n  WHERE id = ${id}\n`);\n", "users.js", 1},
	},
	"js-xss": {
		{`
el.innerHTML = userInput;
`, "view.js", 1},
		{`
el.innerHTML = "<b>static</b>";
`, "view.js", 0},
		{`
el.innerHTML = DOMPurify.sanitize(userInput);
`, "view.js", 0},
		{`
document.write("<p>" + msg + "</p>");
`, "view.js", 1},
	},
	"js-insecure-random": {
		{`
const token = Math.random().toString(36).slice(2);
`, "auth.js", 1},
		{`
const x = Math.random() * width;
`, "chart.js", 0},
	},
	"js-eval": {
		{`
eval(userCode);
`, "run.js", 1},
		{`
setTimeout(() => run(), 100);
`, "run.js", 0},
		{`
setTimeout("run()", 100);
`, "run.js", 1},
		{`
console.warn("never call eval(input) on request data");
`, "run.js", 0},
	},
	"js-command-injection": {
		{"exec(`ls ${dir}`, cb);\n", "shell.js", 1},
		{`
execFile("ls", ["-la", dir], cb);
`, "shell.js", 0},
		{`
child_process.exec("rm -rf " + dir);
`, "shell.js", 1},
		{`
const m = /a+/.exec(input);
`, "shell.js", 0},
	},
	"js-path-traversal": {
		{`
fs.readFile("/uploads/" + req.query.file, cb);
`, "files.js", 1},
		{`
fs.readFile(path.join(__dirname, "index.html"), cb);
`, "files.js", 0},
	},
	"js-insecure-deserialization": {
		{`
const serialize = require('node-serialize');
const obj = serialize.unserialize(body);
`, "session.js", 2},
		{`
const obj = JSON.parse(body);
`, "session.js", 0},
	},
	"js-tls-disabled": {
		{`
const req = https.request({ host, rejectUnauthorized: false });
`, "client.js", 1},
		{`
const req = https.request({ host, ca: bundle });
`, "client.js", 0},
	},
}

// SampleCodeTypeScript holds TypeScript samples keyed by rule ID.
var SampleCodeTypeScript = map[string][]CodeSample{
	"ts-sql-injection": {
		{"const rows = await this.repo.query(`SELECT * FROM orders WHERE owner = '${owner}'`);\n", "orders.ts", 1},
		{`
const rows = await this.repo.query("SELECT * FROM orders WHERE owner = $1", [owner]);
`, "orders.ts", 0},
	},
	"ts-xss": {
		{`
const html: string = comment.body;
container.innerHTML = html;
`, "render.ts", 1},
	},
	"ts-insecure-random": {
		{`
const sessionId: string = Math.random().toString(16);
`, "session.ts", 1},
	},
	"ts-eval": {
		{`
const fn = new Function("a", body);
`, "plugin.ts", 1},
	},
	"ts-command-injection": {
		{"execSync(`git checkout ${branch}`);\n", "git.ts", 1},
		{`
execFileSync("git", ["checkout", branch]);
`, "git.ts", 0},
	},
	"ts-path-traversal": {
		{"res.sendFile(`/srv/static/${req.params.name}`);\n", "static.ts", 1},
	},
	"ts-insecure-deserialization": {
		{`
const state = serialize.unserialize(cookie);
`, "state.ts", 1},
	},
	"ts-tls-disabled": {
		{`
process.env.NODE_TLS_REJECT_UNAUTHORIZED = "0";
`, "client.ts", 1},
	},
}
