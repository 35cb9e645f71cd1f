// Package scaffold writes starter-project files for the languages in a
// profile. Templates are fixed literals; a file that already exists is
// never overwritten unless the caller forces it, so user edits survive
// repeated runs.
package scaffold

import (
	"fmt"
	"os"
	"path/filepath"

	"devenv-enabler/internal/logger"
)

// File is one starter file: a path relative to the output directory plus
// its literal content.
type File struct {
	Path    string
	Content string
}

// templateOrder fixes the generation order for components that have a
// starter template.
var templateOrder = []string{"python", "node", "java", "cpp"}

// templates maps a language component to its starter files.
var templates = map[string][]File{
	"python": {
		{
			Path:    filepath.Join("python-app", "app.py"),
			Content: "def main():\n    print(\"Hello from Python starter\")\n\n\nif __name__ == '__main__':\n    main()\n",
		},
		{
			Path:    filepath.Join("python-app", "requirements.txt"),
			Content: "pytest\n",
		},
		{
			Path:    filepath.Join("python-app", "README.md"),
			Content: "# Python Starter\n\nRun: `python app.py`\n",
		},
	},
	"node": {
		{
			Path:    filepath.Join("node-app", "package.json"),
			Content: "{\n  \"name\": \"node-starter\",\n  \"version\": \"1.0.0\",\n  \"private\": true,\n  \"type\": \"module\",\n  \"scripts\": {\n    \"start\": \"node src/index.js\"\n  }\n}\n",
		},
		{
			Path:    filepath.Join("node-app", "src", "index.js"),
			Content: "console.log('Hello from Node.js starter');\n",
		},
	},
	"java": {
		{
			Path: filepath.Join("java-app", "pom.xml"),
			Content: "<project xmlns=\"http://maven.apache.org/POM/4.0.0\"\n" +
				"         xmlns:xsi=\"http://www.w3.org/2001/XMLSchema-instance\"\n" +
				"         xsi:schemaLocation=\"http://maven.apache.org/POM/4.0.0 https://maven.apache.org/xsd/maven-4.0.0.xsd\">\n" +
				"  <modelVersion>4.0.0</modelVersion>\n" +
				"  <groupId>dev.enabler</groupId>\n" +
				"  <artifactId>java-starter</artifactId>\n" +
				"  <version>1.0.0</version>\n" +
				"  <properties>\n" +
				"    <maven.compiler.source>21</maven.compiler.source>\n" +
				"    <maven.compiler.target>21</maven.compiler.target>\n" +
				"  </properties>\n" +
				"</project>\n",
		},
		{
			Path:    filepath.Join("java-app", "src", "main", "java", "App.java"),
			Content: "public class App {\n    public static void main(String[] args) {\n        System.out.println(\"Hello from Java starter\");\n    }\n}\n",
		},
	},
	"cpp": {
		{
			Path:    filepath.Join("cpp-app", "main.cpp"),
			Content: "#include <iostream>\n\nint main() {\n    std::cout << \"Hello from C++ starter\\n\";\n    return 0;\n}\n",
		},
		{
			Path:    filepath.Join("cpp-app", "CMakeLists.txt"),
			Content: "cmake_minimum_required(VERSION 3.16)\nproject(cpp_starter)\nset(CMAKE_CXX_STANDARD 17)\nadd_executable(cpp_starter main.cpp)\n",
		},
	},
}

// Generate writes the starter files for every component in the list that
// has a template. targetDir is created if absent. Existing files are
// skipped unless force is set.
func Generate(targetDir string, components []string, force bool) error {
	if err := os.MkdirAll(targetDir, 0755); err != nil {
		return fmt.Errorf("cannot create output directory %s: %w", targetDir, err)
	}

	requested := make(map[string]bool, len(components))
	for _, c := range components {
		requested[c] = true
	}

	for _, component := range templateOrder {
		if !requested[component] {
			continue
		}
		for _, file := range templates[component] {
			if err := writeFile(filepath.Join(targetDir, file.Path), file.Content, force); err != nil {
				return err
			}
		}
	}

	logger.Info("[INFO] Sample projects generated under: %s\n", targetDir)
	return nil
}

// writeFile writes content to path, creating parent directories. An
// existing file is left alone unless force is set.
func writeFile(path, content string, force bool) error {
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return fmt.Errorf("cannot create directory for %s: %w", path, err)
	}
	if _, err := os.Stat(path); err == nil && !force {
		logger.Debug("[DEBUG] Keeping existing file: %s\n", path)
		return nil
	}
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		return fmt.Errorf("cannot write %s: %w", path, err)
	}
	return nil
}
