package testutils

// SampleCodeRuby holds Ruby samples keyed by rule ID.
var SampleCodeRuby = map[string][]CodeSample{
	"ruby-sql-injection": {
		{`
users = User.where("name = '#{params[:name]}'")
`, "users_controller.rb", 1},
		{`
users = User.where("name = ?", params[:name])
`, "users_controller.rb", 0},
	},
	"ruby-command-injection": {
		{`
system("ls #{dir}")
`, "tasks.rb", 1},
		{"output = `cat #{file}`\n", "tasks.rb", 1},
		{`
system("ls", dir)
`, "tasks.rb", 0},
	},
	"ruby-xss": {
		{`
html = raw(@comment.body)
`, "comments_helper.rb", 1},
		{`
html = comment.body.html_safe
`, "comments_helper.rb", 1},
		{`
html = "<br>".html_safe
`, "comments_helper.rb", 0},
	},
	"ruby-eval": {
		{`
eval(params[:code])
`, "console.rb", 1},
		{`
config.instance_eval do
  set :port, 8080
end
`, "console.rb", 0},
	},
	"ruby-insecure-deserialization": {
		{`
obj = Marshal.load(data)
`, "cache.rb", 1},
		{`
obj = YAML.safe_load(data)
`, "cache.rb", 0},
		{`
obj = YAML.load(data, permitted_classes: [Date])
`, "cache.rb", 0},
	},
	"ruby-insecure-random": {
		{`
token = rand(100000..999999)
`, "otp.rb", 1},
		{`
token = SecureRandom.hex(16)
`, "otp.rb", 0},
		{`
roll = rand(6)
`, "dice.rb", 0},
	},
	"ruby-path-traversal": {
		{`
send_file "/uploads/#{params[:file]}"
`, "downloads_controller.rb", 1},
		{`
send_file File.join(UPLOADS, File.basename(params[:file]))
`, "downloads_controller.rb", 0},
	},
	"ruby-tls-verify-none": {
		{`
http.verify_mode = OpenSSL::SSL::VERIFY_NONE
`, "client.rb", 1},
		{`
http.verify_mode = OpenSSL::SSL::VERIFY_PEER
`, "client.rb", 0},
	},
}
