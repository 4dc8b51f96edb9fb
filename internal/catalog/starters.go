package catalog

import (
	"fmt"
	"strings"

	"github.com/dev-scripter/kickoff/internal/project"
)

// Dockerfile returns the placeholder container build file.
func Dockerfile(s *project.Settings) string {
	langs := strings.Join(project.Names(s.Languages), ", ")
	return fmt.Sprintf("# Dockerfile for %s project\nFROM busybox\n", langs)
}

// CPPMain is the starter C++ program.
const CPPMain = `#include <iostream>
int main() {
    std::cout << "Hello, C++ World!" << std::endl;
    return 0;
}
`

const cmakeBase = `cmake_minimum_required(VERSION 3.15)
project({{ .ProjectName }} VERSION 1.0)

set(CMAKE_CXX_STANDARD 17)
set(CMAKE_CXX_STANDARD_REQUIRED True)

add_executable(${PROJECT_NAME} src/main.cpp)
`

const cmakeQt = `
find_package(Qt6 COMPONENTS Widgets Test REQUIRED)
target_link_libraries(${PROJECT_NAME} PRIVATE Qt6::Widgets)

enable_testing()
add_executable(run_tests tests/test_main.cpp)
target_link_libraries(run_tests PRIVATE Qt6::Test)
qt_add_test(run_tests run_tests)
`

const cmakeGoogleTest = `
include(FetchContent)
FetchContent_Declare(
  googletest
  URL https://github.com/google/googletest/archive/refs/tags/v1.14.0.zip
)
FetchContent_MakeAvailable(googletest)

enable_testing()
add_executable(run_tests tests/test_main.cpp)
target_link_libraries(run_tests PRIVATE gtest_main)
include(GoogleTest)
gtest_discover_tests(run_tests)
`

// CPPTestFlavor selects the optional test block of a CMakeLists.
type CPPTestFlavor int

const (
	CPPTestNone CPPTestFlavor = iota
	CPPTestQt
	CPPTestGoogleTest
)

// CMakeLists renders the CMakeLists.txt for a C++ component.
func CMakeLists(projectName string, flavor CPPTestFlavor) (string, error) {
	body := cmakeBase
	switch flavor {
	case CPPTestQt:
		body += cmakeQt
	case CPPTestGoogleTest:
		body += cmakeGoogleTest
	}
	return Render("cmakelists", body, struct{ ProjectName string }{projectName})
}

// QtTestMain is the starter Qt Test source.
const QtTestMain = `#include <QtTest/QtTest>
class SampleTest: public QObject {
    Q_OBJECT
private slots:
    void testSample() {
        QVERIFY(true);
    }
};
QTEST_MAIN(SampleTest)
#include "test_main.moc"
`

// GoogleTestMain is the starter GoogleTest source.
const GoogleTestMain = `#include <gtest/gtest.h>
TEST(SampleTest, AssertionTrue) {
    ASSERT_TRUE(true);
}
`

// PythonSampleTest is the starter pytest file.
const PythonSampleTest = `def test_example():
    assert True
`

// BuildScript renders the top-level build.sh of a multi-language project.
// One invocation per component, in selection order; set -e aborts the
// whole script on the first failing component.
func BuildScript(components []project.Component) string {
	var b strings.Builder
	b.WriteString("#!/usr/bin/env bash\n")
	b.WriteString("# Builds every component in order. Aborts on the first failure.\n")
	b.WriteString("set -euo pipefail\n")
	for _, c := range components {
		b.WriteString(fmt.Sprintf("\necho \"--- building %s ---\"\n", c.Dir))
		b.WriteString(fmt.Sprintf("(cd %s && %s)\n", c.Dir, c.Language.BuildCommand()))
	}
	return b.String()
}
