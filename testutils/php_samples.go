package testutils

// SampleCodePHP holds PHP samples keyed by rule ID.
var SampleCodePHP = map[string][]CodeSample{
	"php-sql-injection": {
		{`<?php
$id = $_GET['id'];
$result = mysqli_query($conn, "SELECT * FROM users WHERE id = $id");
`, "user.php", 1},
		{`<?php
$stmt = $pdo->prepare("SELECT * FROM users WHERE id = ?");
$stmt->execute([$id]);
`, "user.php", 0},
		{`<?php
$sql = "SELECT * FROM users WHERE name = '" . $name . "'";
`, "user.php", 1},
	},
	"php-xss": {
		{`<?php
echo "Hello " . $_GET['name'];
`, "hello.php", 1},
		{`<?php
echo htmlspecialchars($_GET['name'], ENT_QUOTES, 'UTF-8');
`, "hello.php", 0},
	},
	"php-file-inclusion": {
		{`<?php
include($_GET['page'] . ".php");
`, "index.php", 1},
		{`<?php
include 'header.php';
`, "index.php", 0},
	},
	"php-eval": {
		{`<?php
eval($code);
`, "run.php", 1},
		{`<?php
$parser->eval($code);
`, "run.php", 0},
	},
	"php-command-injection": {
		{`<?php
system("ping -c 1 " . $host);
`, "ping.php", 1},
		{`<?php
system("ping -c 1 " . escapeshellarg($host));
`, "ping.php", 0},
		{`<?php
$out = shell_exec("uptime");
`, "ping.php", 0},
	},
	"php-insecure-deserialization": {
		{`<?php
$obj = unserialize($_COOKIE['data']);
`, "session.php", 1},
		{`<?php
$obj = unserialize($data, ['allowed_classes' => false]);
`, "session.php", 0},
	},
	"php-insecure-random": {
		{`<?php
$token = md5(rand());
`, "reset.php", 1},
		{`<?php
$n = rand(1, 6);
`, "dice.php", 0},
	},
	"php-path-traversal": {
		{`<?php
readfile("/var/files/" . $_GET['f']);
`, "download.php", 1},
		{`<?php
readfile("/var/files/" . basename($_GET['f']));
`, "download.php", 0},
	},
	"php-display-errors": {
		{`<?php
ini_set('display_errors', '1');
`, "bootstrap.php", 1},
		{`<?php
ini_set('display_errors', '0');
`, "bootstrap.php", 0},
	},
}
