package testutils

// SampleCodeJava holds Java samples keyed by rule ID.
var SampleCodeJava = map[string][]CodeSample{
	"java-sql-injection": {
		{`
String name = request.getParameter("name");
ResultSet rs = stmt.executeQuery("SELECT * FROM users WHERE name = '" + name + "'");
`, "UserDao.java", 1},
		{`
PreparedStatement ps = conn.prepareStatement("SELECT * FROM users WHERE name = ?");
ps.setString(1, name);
`, "UserDao.java", 0},
		{`
String sql = String.format("SELECT * FROM users WHERE id = %s", id);
`, "UserDao.java", 1},
	},
	"java-command-injection": {
		{`
Runtime.getRuntime().exec("ping " + host);
`, "Ping.java", 1},
		{`
Runtime.getRuntime().exec("ls");
`, "Ping.java", 0},
		{`
new ProcessBuilder("sh", "-c", command).start();
`, "Ping.java", 1},
	},
	"java-xss": {
		{`
response.getWriter().println("Hello " + request.getParameter("name"));
`, "HelloServlet.java", 1},
		{`
response.getWriter().println(Encode.forHtml(request.getParameter("name")));
`, "HelloServlet.java", 0},
	},
	"java-insecure-deserialization": {
		{`
ObjectInputStream in = new ObjectInputStream(socket.getInputStream());
Object o = in.readObject();
`, "Server.java", 2},
		{`
private void readObject(ObjectInputStream in) throws IOException {
}
`, "Server.java", 0},
	},
	"java-insecure-random": {
		{`
String token = Long.toString(new Random().nextLong());
`, "Tokens.java", 1},
		{`
int roll = new Random().nextInt(6);
`, "Dice.java", 0},
		{`
String token = Long.toString(new SecureRandom().nextLong());
`, "Tokens.java", 0},
	},
	"java-weak-cipher": {
		{`
Cipher c = Cipher.getInstance("DES/CBC/PKCS5Padding");
`, "Crypto.java", 1},
		{`
Cipher c = Cipher.getInstance("AES");
`, "Crypto.java", 1},
		{`
Cipher c = Cipher.getInstance("AES/GCM/NoPadding");
`, "Crypto.java", 0},
	},
	"java-tls-disabled": {
		{`
conn.setHostnameVerifier((hostname, session) -> true);
`, "Client.java", 1},
	},
	"java-path-traversal": {
		{`
File f = new File("/data/" + request.getParameter("file"));
`, "Download.java", 1},
		{`
File f = new File(base, "static.txt");
`, "Download.java", 0},
	},
}
