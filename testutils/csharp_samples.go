package testutils

// SampleCodeCSharp holds C# samples keyed by rule ID.
var SampleCodeCSharp = map[string][]CodeSample{
	"csharp-sql-injection": {
		{`
var cmd = new SqlCommand("SELECT * FROM Users WHERE Name = '" + name + "'", conn);
`, "UserRepository.cs", 1},
		{`
var cmd = new SqlCommand("SELECT * FROM Users WHERE Name = @name", conn);
cmd.Parameters.AddWithValue("@name", name);
`, "UserRepository.cs", 0},
		{`
var sql = $"SELECT * FROM Users WHERE Id = {id}";
`, "UserRepository.cs", 1},
	},
	"csharp-xss": {
		{`
Response.Write(Request.QueryString["q"]);
`, "Search.aspx.cs", 1},
		{`
Response.Write(HttpUtility.HtmlEncode(Request.QueryString["q"]));
`, "Search.aspx.cs", 0},
	},
	"csharp-insecure-deserialization": {
		{`
var formatter = new BinaryFormatter();
var obj = formatter.Deserialize(stream);
`, "Cache.cs", 1},
		{`
var settings = new JsonSerializerSettings { TypeNameHandling = TypeNameHandling.None };
`, "Cache.cs", 0},
		{`
var settings = new JsonSerializerSettings { TypeNameHandling = TypeNameHandling.All };
`, "Cache.cs", 1},
	},
	"csharp-insecure-random": {
		{`
var token = new Random().Next().ToString();
`, "Tokens.cs", 1},
		{`
var roll = new Random().Next(1, 7);
`, "Dice.cs", 0},
	},
	"csharp-command-injection": {
		{`
Process.Start("cmd.exe", "/c " + userInput);
`, "Runner.cs", 1},
		{`
Process.Start("notepad.exe");
`, "Runner.cs", 0},
	},
	"csharp-tls-disabled": {
		{`
ServicePointManager.ServerCertificateValidationCallback += (sender, cert, chain, errors) => true;
`, "Http.cs", 1},
	},
	"csharp-path-traversal": {
		{`
var text = File.ReadAllText(Path.Combine(root, Request.Query["file"]));
`, "Files.cs", 1},
		{`
var text = File.ReadAllText(Path.Combine(root, Path.GetFileName(Request.Query["file"])));
`, "Files.cs", 0},
	},
}
