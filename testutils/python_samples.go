package testutils

// SampleCodePython holds Python samples keyed by rule ID.
var SampleCodePython = map[string][]CodeSample{
	"python-sql-injection": {
		{`
user_id = request.args.get("id")
query = "SELECT * FROM users WHERE id = %s" % user_id
cursor.execute(query)
`, "app.py", 1},
		{`
cursor.execute("SELECT * FROM users WHERE id = %s", (user_id,))
`, "app.py", 0},
		{`
q = f"SELECT name FROM users WHERE id = {uid}"
`, "app.py", 1},
		{`
sql = "DELETE FROM sessions WHERE user = '" + name + "'"
`, "app.py", 1},
		{`
# query = "SELECT * FROM t WHERE id = %s" % uid
msg = "Selected {} items".format(n)
`, "app.py", 0},
	},
	"python-command-injection": {
		{`
import os
os.system("rm -rf " + filename)
`, "cleanup.py", 1},
		{`
import os
os.system("ls -la")
`, "cleanup.py", 0},
		{`
out = os.popen(f"cat {path}").read()
`, "cleanup.py", 1},
		{`
os.system("rm -rf " + shlex.quote(filename))
`, "cleanup.py", 0},
		{`
log.info("avoid os.system(cmd) for user input")
`, "cleanup.py", 0},
	},
	"python-subprocess-shell": {
		{`
subprocess.call(cmd, shell=True)
`, "run.py", 1},
		{`
subprocess.run(
    ["ls", path],
    shell=True,
)
`, "run.py", 1},
		{`
subprocess.run(["ls", path])
`, "run.py", 0},
	},
	"python-insecure-deserialization": {
		{`
import pickle
obj = pickle.loads(data)
`, "load.py", 1},
		{`
cfg = yaml.load(stream, Loader=yaml.SafeLoader)
`, "load.py", 0},
		{`
cfg = yaml.load(stream)
`, "load.py", 1},
		{`
obj = json.loads(data)
`, "load.py", 0},
		{`
raise ValueError("pickle.loads(data) is not allowed here")
`, "load.py", 0},
	},
	"python-insecure-random": {
		{`
import random
token = random.randint(1000, 9999)
`, "token.py", 1},
		{`
import random

dice = random.randint(1, 6)
print(dice)
`, "game.py", 0},
		{`
import secrets
token = secrets.token_hex(16)
`, "token.py", 0},
	},
	"python-eval": {
		{`
result = eval(user_input)
`, "calc.py", 1},
		{`
value = ast.literal_eval(text)
`, "calc.py", 0},
		{`
msg = "do not use exec(cmd) here"
`, "calc.py", 0},
		{`
def run(expr):
    """Never call eval() on input"""
    return parse(expr)
`, "calc.py", 0},
		{`
def run(expr):
    """
    eval() can execute arbitrary code,
    so expressions go through the parser.
    """
    return eval(expr)
`, "calc.py", 1},
	},
	"python-path-traversal": {
		{`
filename = request.args.get("name")
with open("/srv/files/" + filename) as f:
    body = f.read()
`, "files.py", 1},
		{`
with open(os.path.join(BASE, secure_filename(name))) as f:
    body = f.read()
`, "files.py", 0},
		{`
with open("config.yml") as f:
    body = f.read()
`, "files.py", 0},
	},
	"python-tls-verify-disabled": {
		{`
resp = requests.get(url, verify=False)
`, "client.py", 1},
		{`
resp = requests.get(url, verify=True)
`, "client.py", 0},
	},
	"python-xss": {
		{`
return render_template_string("<h1>" + name + "</h1>")
`, "views.py", 1},
		{`
return render_template_string(TEMPLATE, name=name)
`, "views.py", 0},
	},
	"hardcoded-password": {
		{`
cursor.execute(f"UPDATE users SET password = '{hashed}' WHERE id = {uid}")
`, "users.py", 0},
		{`
DB_PASSWORD = "S3cure!pass"
`, "settings.py", 1},
	},
}
