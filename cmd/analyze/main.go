package main

import (
	"encoding/json"
	"flag"
	"fmt"
	"os"
	"strings"

	"github.com/sirupsen/logrus"
	"gopkg.in/yaml.v3"

	hanabi "github.com/lukev/hanabi-analyzer"
)

func main() {
	levelFlag := flag.String("level", "L1_Beginner", "convention level: L0_Basic, L1_Beginner, L2_Intermediate, L3_Advanced")
	verbose := flag.Bool("verbose", false, "log each processed action")
	flag.Parse()

	if flag.NArg() < 1 {
		fmt.Println("Usage: analyze [-level L1_Beginner] [-verbose] <game.json|game.yaml>")
		os.Exit(1)
	}
	gamePath := flag.Arg(0)

	level, err := parseLevel(*levelFlag)
	if err != nil {
		fmt.Printf("bad -level: %v\n", err)
		os.Exit(1)
	}

	logger := logrus.New()
	if *verbose {
		logger.SetLevel(logrus.DebugLevel)
	} else {
		logger.SetLevel(logrus.WarnLevel)
	}

	game, err := loadGame(gamePath)
	if err != nil {
		fmt.Printf("failed to load game: %v\n", err)
		os.Exit(1)
	}

	analyzer := hanabi.NewAnalyzer(logger)
	result, err := analyzer.Analyze(game, hanabi.AnalyzerOptions{Level: level})
	if err != nil {
		fmt.Printf("analysis failed: %v\n", err)
		os.Exit(1)
	}

	fmt.Printf("Analyzed %d actions at %s\n", len(game.Actions), level)
	fmt.Printf("Found %d violations\n", result.Summary.TotalViolations)
	for kind, count := range result.Summary.ByType {
		fmt.Printf("  %-24s %d\n", kind, count)
	}

	for _, v := range result.Violations {
		fmt.Printf("turn %d [%s] %s: %s\n", v.Turn, v.Severity, v.Player, v.Description)
	}
}

func parseLevel(s string) (hanabi.ConventionLevel, error) {
	switch s {
	case "L0_Basic":
		return hanabi.L0_Basic, nil
	case "L1_Beginner":
		return hanabi.L1_Beginner, nil
	case "L2_Intermediate":
		return hanabi.L2_Intermediate, nil
	case "L3_Advanced":
		return hanabi.L3_Advanced, nil
	default:
		return 0, fmt.Errorf("unrecognized level %q", s)
	}
}

func loadGame(path string) (*hanabi.Game, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	var game hanabi.Game
	if strings.HasSuffix(path, ".yaml") || strings.HasSuffix(path, ".yml") {
		err = yaml.Unmarshal(data, &game)
	} else {
		err = json.Unmarshal(data, &game)
	}
	if err != nil {
		return nil, err
	}
	return &game, nil
}
